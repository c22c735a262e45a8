package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum entries to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries of a list file",
	Long: `List the entries of the reference list (or the companion list) in file order.

Examples:
  apa list --human
  apa list --companion --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	list := mustOpenList(mustLoadConfig())

	lines, err := list.Lines()
	if err != nil {
		exitWithError(ExitError, "reading list: %v", err)
	}
	total := len(lines)
	entries := numbered(lines)
	if listLimit > 0 && listLimit < total {
		entries = entries[:listLimit]
	}

	if !humanOutput {
		outputJSON(entries)
		return nil
	}

	if total == 0 {
		fmt.Printf("No entries in %s\n", list.Path)
		return nil
	}
	if len(entries) < total {
		outputHeader("%d entries (showing first %d)", total, len(entries))
	} else {
		outputHeader("%d entries in %s", total, list.Path)
	}
	for _, e := range entries {
		outputEntry(e.Ordinal, e.Text)
	}
	return nil
}
