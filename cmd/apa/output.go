package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles for human-readable output.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	ordinalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputHeader prints a styled section header.
func outputHeader(format string, args ...interface{}) {
	fmt.Println(headerStyle.Render(fmt.Sprintf(format, args...)))
}

// outputEntry prints one "N. text" list line with a muted ordinal.
func outputEntry(ordinal int, text string) {
	fmt.Printf("%s %s\n", ordinalStyle.Render(fmt.Sprintf("%d.", ordinal)), text)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that modify a list.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Count  int    `json:"count"`
}

// CitationResponse is the response for render.
type CitationResponse struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Citation string `json:"citation"`
	Appended bool   `json:"appended"`
	Path     string `json:"path,omitempty"`
}

// ListEntry is one numbered line of a list.
type ListEntry struct {
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// numbered pairs entries with their 1-based ordinals.
func numbered(entries []string) []ListEntry {
	out := make([]ListEntry, len(entries))
	for i, e := range entries {
		out[i] = ListEntry{Ordinal: i + 1, Text: e}
	}
	return out
}
