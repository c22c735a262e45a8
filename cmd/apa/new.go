package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matsen/apa/internal/clipboard"
	"github.com/matsen/apa/internal/collect"
	"github.com/spf13/cobra"
)

var newCopy bool

func init() {
	newCmd.Flags().BoolVar(&newCopy, "copy", false, "Copy each generated citation to the clipboard")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Enter citations interactively",
	Long: `Enter citations interactively, one field at a time.

At the first prompt type 'journal' or 'book' (or 'quit' to exit), then the
number of a citation type. Each field is then prompted in turn:
  - leave a field empty to skip it
  - type 'back' to re-enter the previous field

Each generated citation is appended to the reference list, which is then
re-sorted and renumbered.

Examples:
  apa new
  apa new --copy
  apa new --file ~/thesis/references.txt`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	if companion {
		exitWithError(ExitError, "apa new writes citations; use 'apa append' for the companion list")
	}
	cfg := mustLoadConfig()
	list := mustOpenList(cfg)

	c := collect.New(cmd.InOrStdin(), cmd.OutOrStdout(), list)
	if isTerminal() {
		c.Theme = collect.DefaultTheme()
	}
	if newCopy && !clipboard.IsAvailable() {
		fmt.Fprintln(os.Stderr, "clipboard unavailable; citations will not be copied")
		newCopy = false
	}
	if newCopy {
		c.OnCitation = func(line string) {
			if err := clipboard.Copy(line); err != nil {
				if errors.Is(err, clipboard.ErrClipboardUnavailable) {
					fmt.Fprintln(os.Stderr, "clipboard unavailable; citation not copied")
					return
				}
				fmt.Fprintf(os.Stderr, "copying citation: %v\n", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
		}
	}

	if err := c.Run(cmd.Context()); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}
