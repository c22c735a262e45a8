package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/matsen/apa/internal/storage"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", storage.DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a list file by keyword",
	Long: `Search the reference list (or the companion list) by keyword.

Every word of the query must match the start of a word in the entry.
Results keep their list ordinals. The search index is rebuilt from the list
file on every run.

Examples:
  apa search smith
  apa search "genomics 2018" --human
  apa search nature --companion`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	list := mustOpenList(cfg)

	db, err := storage.OpenDB(cfg.DBPath())
	if err != nil {
		exitWithError(ExitError, "opening search index: %v", err)
	}
	defer db.Close()

	if _, err := db.RebuildFromList(list.Path); err != nil {
		exitWithError(ExitError, "indexing list: %v", err)
	}
	total, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting entries: %v", err)
	}
	slog.Debug("indexed list", "path", list.Path, "entries", total)

	query := strings.Join(args, " ")
	results, err := db.Search(query, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	// Empty result is not an error
	if results == nil {
		results = []storage.Entry{}
	}

	if !humanOutput {
		outputJSON(results)
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No entries found among %d\n", total)
		return nil
	}
	outputHeader("Found %d of %d entries:", len(results), total)
	for _, r := range results {
		outputEntry(r.Ordinal, r.Text)
	}
	return nil
}
