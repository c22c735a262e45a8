package main

import (
	"fmt"
	"strings"

	"github.com/matsen/apa/internal/citation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(typesCmd)
}

var typesCmd = &cobra.Command{
	Use:   "types [journal|book]",
	Short: "List citation types and their fields",
	Long: `List the citation types of one or both categories with the fields each
collects, in prompt order.

Examples:
  apa types
  apa types book --human`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypes,
}

// TypeInfo describes one citation type.
type TypeInfo struct {
	Category string   `json:"category"`
	Number   int      `json:"number"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Fields   []string `json:"fields"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	cats := citation.Categories
	if len(args) == 1 {
		cat, err := citation.ParseCategory(args[0])
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		cats = []citation.Category{cat}
	}

	var infos []TypeInfo
	for _, cat := range cats {
		for _, s := range citation.Types(cat) {
			fields := make([]string, len(s.Fields))
			for i, f := range s.Fields {
				fields[i] = string(f)
			}
			infos = append(infos, TypeInfo{
				Category: string(cat),
				Number:   s.Index,
				Type:     s.Kind.String(),
				Label:    s.Label,
				Fields:   fields,
			})
		}
	}

	if !humanOutput {
		outputJSON(infos)
		return nil
	}

	current := ""
	for _, info := range infos {
		if info.Category != current {
			if current != "" {
				fmt.Println()
			}
			outputHeader("%s", info.Category)
			current = info.Category
		}
		fmt.Printf("  %d. %s\n", info.Number, info.Label)
		fmt.Printf("     %s\n", strings.Join(info.Fields, ", "))
	}
	return nil
}
