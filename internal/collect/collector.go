package collect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Appender persists rendered citations.
type Appender interface {
	Append(entries ...string) error
}

// Theme styles interactive output. A nil *Theme prints plain text.
type Theme struct {
	Prompt   lipgloss.Style
	Message  lipgloss.Style
	Citation lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme returns the colour theme used on terminals.
func DefaultTheme() *Theme {
	return &Theme{
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Citation: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// Collector runs Sessions against a line-oriented reader and writer.
type Collector struct {
	in   *bufio.Reader
	out  io.Writer
	list Appender

	// Theme styles output when non-nil.
	Theme *Theme
	// OnCitation, when set, is called with each citation after it is appended.
	OnCitation func(line string)
}

// New returns a Collector reading answers from in and appending citations to list.
func New(in io.Reader, out io.Writer, list Appender) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out, list: list}
}

// Run loops until the user quits or input ends. Render and append failures
// are reported and the loop continues at category selection.
func (c *Collector) Run(ctx context.Context) error {
	s := NewSession()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(c.style(func(t *Theme) lipgloss.Style { return t.Prompt }, s.Prompt()))
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			c.print("\n")
			return nil
		}

		res := s.Handle(line)
		for _, msg := range res.Messages {
			styleFn := func(t *Theme) lipgloss.Style { return t.Message }
			if res.Err != nil {
				styleFn = func(t *Theme) lipgloss.Style { return t.Error }
			}
			c.println(c.style(styleFn, msg))
		}
		if res.Err != nil {
			slog.Debug("citation discarded", "error", res.Err)
		}
		if res.Citation != "" {
			c.accept(res.Citation)
		}
		if res.Done {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func (c *Collector) accept(line string) {
	c.println("Generated Citation:")
	c.println(c.style(func(t *Theme) lipgloss.Style { return t.Citation }, line))

	if err := c.list.Append(line); err != nil {
		c.println(c.style(func(t *Theme) lipgloss.Style { return t.Error },
			fmt.Sprintf("Could not save citation: %v", err)))
		return
	}
	if c.OnCitation != nil {
		c.OnCitation(line)
	}
}

func (c *Collector) style(pick func(*Theme) lipgloss.Style, s string) string {
	if c.Theme == nil {
		return s
	}
	// Keep the trailing space of prompts outside the styled span.
	trimmed := strings.TrimRight(s, " ")
	return pick(c.Theme).Render(trimmed) + s[len(trimmed):]
}

func (c *Collector) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Collector) println(s string) {
	fmt.Fprintln(c.out, s)
}
