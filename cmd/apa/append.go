package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matsen/apa/internal/collect"
	"github.com/spf13/cobra"
)

// appendExitToken ends interactive companion entry.
const appendExitToken = "exit"

func init() {
	rootCmd.AddCommand(appendCmd)
}

var appendCmd = &cobra.Command{
	Use:   "append [text...]",
	Short: "Add free-text entries to the companion list",
	Long: `Add entries to the companion list (by default ~/Journal List.txt).

The list is kept in case-insensitive alphabetical order and renumbered on
every change. Duplicate entries are kept.

With arguments, the arguments are joined into a single entry. Without
arguments, entries are read one per line until 'exit' or end of input.

Examples:
  apa append "Journal of Experimental Psychology"
  apa append`,
	RunE: runAppend,
}

func runAppend(cmd *cobra.Command, args []string) error {
	companion = true
	list := mustOpenList(mustLoadConfig())

	if len(args) > 0 {
		entry := strings.TrimSpace(strings.Join(args, " "))
		if entry == "" {
			exitWithError(ExitDataError, "entry is empty")
		}
		if err := list.Append(entry); err != nil {
			exitWithError(ExitError, "appending entry: %v", err)
		}
		entries, err := list.Lines()
		if err != nil {
			exitWithError(ExitError, "reading list: %v", err)
		}
		if humanOutput {
			fmt.Printf("'%s' has been added to %s.\n", entry, list.Path)
		} else {
			outputJSON(StatusResponse{Status: "appended", Path: list.Path, Count: len(entries)})
		}
		return nil
	}

	if err := appendLoop(cmd.InOrStdin(), cmd.OutOrStdout(), list, list.Path); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}

// appendLoop reads entries line by line until "exit" or EOF, appending each.
// Append failures are reported and the loop continues.
func appendLoop(in io.Reader, out io.Writer, list collect.Appender, path string) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "Enter a word or sentence (or '%s' to quit): ", appendExitToken)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		entry := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(entry, appendExitToken):
			return nil
		case entry == "":
		default:
			if err := list.Append(entry); err != nil {
				fmt.Fprintf(out, "Could not add '%s': %v\n", entry, err)
			} else {
				fmt.Fprintf(out, "'%s' has been added to %s.\n", entry, path)
			}
		}

		if eof {
			fmt.Fprintln(out)
			return nil
		}
	}
}
