package main

import (
	"errors"
	"fmt"

	"github.com/matsen/apa/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values in ~/.config/apa/config.yml.

Usage:
  apa config                                   # Show all config
  apa config references-file                   # Get specific value
  apa config references-file ~/refs.txt        # Set value
  apa config sort-strategies lexicographic     # Plain alphabetical only

Keys:
  references-file   Citation list (default ~/APA_Citations.txt, env APA_REFERENCES_FILE)
  list-file         Companion list (default ~/Journal List.txt, env APA_LIST_FILE)
  sort-strategies   Comma-separated: lexicographic, initials
  cache-dir         Search index directory (env APA_CACHE_DIR)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := config.Path()

	if len(args) == 2 {
		if err := config.Set(path, args[0], args[1]); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if humanOutput {
			fmt.Printf("Set %s = %s\n", args[0], args[1])
		} else {
			outputJSON(UpdateResponse{Status: "updated", Key: args[0], Value: args[1]})
		}
		return nil
	}

	cfg := mustLoadConfig()

	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			code := ExitError
			if errors.Is(err, config.ErrUnknownKey) {
				code = ExitConfigError
			}
			exitWithError(code, "%v", err)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{args[0]: value})
		}
		return nil
	}

	if humanOutput {
		for _, key := range config.Keys {
			value, _ := cfg.Get(key)
			fmt.Printf("%-16s %s\n", key+":", value)
		}
		fmt.Printf("%-16s %s\n", "config-file:", path)
		return nil
	}
	outputJSON(ConfigResponse{
		ConfigFile:     path,
		ReferencesFile: cfg.ReferencesFile,
		ListFile:       cfg.ListFile,
		SortStrategies: cfg.SortStrategies,
		CacheDir:       cfg.CacheDir,
	})
	return nil
}

// ConfigResponse is the response for config show.
type ConfigResponse struct {
	ConfigFile     string   `json:"config_file"`
	ReferencesFile string   `json:"references_file"`
	ListFile       string   `json:"list_file"`
	SortStrategies []string `json:"sort_strategies"`
	CacheDir       string   `json:"cache_dir"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}
