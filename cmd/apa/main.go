// Package main provides the apa CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/matsen/apa/internal/config"
	"github.com/matsen/apa/internal/reflist"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool
	// listFile overrides the configured list path
	listFile string
	// companion selects the free-text companion list instead of the citation list
	companion bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so cobra errors (bad flags etc.) are printed here
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apa",
	Short: "APA citation generator with sorted reference lists",
	Long: `apa formats bibliographic metadata as APA citations and keeps them in a
sorted, numbered reference list file.

Citations are entered interactively with 'apa new' or in one shot with
'apa render'. After every append the whole list is re-sorted: first
case-insensitively, then by the pinyin initials of Chinese author names.

A companion list ('apa append', or --companion on list/sort/search) keeps
free-text entries such as journal names in plain alphabetical order.

Commands that are not interactive output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		config.LoadEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().StringVarP(&listFile, "file", "f", "", "List file to operate on (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&companion, "companion", false, "Operate on the companion free-text list")
	rootCmd.Version = Version
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenList resolves the list selected by flags and config, exits on error.
// The citation list uses the configured strategies; the companion list is
// always lexicographic.
func mustOpenList(cfg *config.Config) *reflist.List {
	if companion {
		path := cfg.ListFile
		if listFile != "" {
			path = config.ExpandPath(listFile)
		}
		return reflist.New(path, reflist.Lexicographic{})
	}

	strategies, err := cfg.Strategies()
	if err != nil {
		exitWithError(ExitConfigError, "sort strategies: %v", err)
	}
	path := cfg.ReferencesFile
	if listFile != "" {
		path = config.ExpandPath(listFile)
	}
	slog.Debug("using list", "path", path, "strategies", cfg.SortStrategies)
	return reflist.New(path, strategies...)
}
