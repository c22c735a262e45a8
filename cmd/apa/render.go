package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matsen/apa/internal/citation"
	"github.com/spf13/cobra"
)

var (
	renderFields []string
	renderAppend bool
)

func init() {
	renderCmd.Flags().StringArrayVar(&renderFields, "field", nil, "Field value as name=value (repeatable)")
	renderCmd.Flags().BoolVar(&renderAppend, "append", false, "Append the citation to the reference list")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <journal|book> <type-number>",
	Short: "Render a citation from field flags",
	Long: `Render a citation without prompting.

Field names are listed by 'apa types'. Fields that are not given render as
empty segments; a missing DOI, URL, title or article number is an error.

Examples:
  apa render journal 1 --field authors="Smith, J." --field year=2020 \
    --field title="A Study" --field journal="Journal of X" \
    --field volume=5 --field issue=2 --field pages=100-110
  apa render book 5 --field title="A Preprint" --field url=https://arxiv.org/abs/1 --append`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cat, err := citation.ParseCategory(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		exitWithError(ExitDataError, "type number must be an integer: %q", args[1])
	}
	schema, err := citation.Lookup(cat, index)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	fields, err := parseFieldArgs(schema, renderFields)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	line, err := renderSchema(schema, fields)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	resp := CitationResponse{Type: schema.Kind.String(), Label: schema.Label, Citation: line}
	if renderAppend {
		list := mustOpenList(mustLoadConfig())
		if err := list.Append(line); err != nil {
			exitWithError(ExitError, "appending citation: %v", err)
		}
		resp.Appended = true
		resp.Path = list.Path
	}

	if humanOutput {
		fmt.Println(line)
		if resp.Appended {
			fmt.Printf("Appended to %s\n", resp.Path)
		}
	} else {
		outputJSON(resp)
	}
	return nil
}

func renderSchema(schema citation.Schema, fields citation.Fields) (string, error) {
	c, err := citation.Build(schema.Kind, fields)
	if err != nil {
		return "", err
	}
	return c.Render()
}

var errBadFieldArg = errors.New("invalid --field")

// parseFieldArgs parses name=value pairs, accepting only single-line values
// for fields of schema.
func parseFieldArgs(schema citation.Schema, args []string) (citation.Fields, error) {
	allowed := make(map[citation.Field]bool, len(schema.Fields))
	names := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		allowed[f] = true
		names[i] = string(f)
	}

	fields := make(citation.Fields, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected name=value", errBadFieldArg, arg)
		}
		f := citation.Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
		if !allowed[f] {
			return nil, fmt.Errorf("%w %q: %s takes %s", errBadFieldArg, name, schema.Label, strings.Join(names, ", "))
		}
		if strings.ContainsAny(value, "\r\n") {
			return nil, fmt.Errorf("%w %q: value must be a single line", errBadFieldArg, name)
		}
		if value = strings.TrimSpace(value); value != "" {
			fields[f] = value
		}
	}
	return fields, nil
}
