// Package collect drives interactive, field-by-field entry of a citation.
package collect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matsen/apa/internal/citation"
)

// Control tokens recognized in user input (case-insensitive).
const (
	TokenQuit = "quit"
	TokenBack = "back"
)

// Messages shown to the user.
const (
	MsgInvalidCategory  = "Invalid form. Please enter either 'journal' or 'book'."
	MsgNotANumber       = "Invalid input. Please enter a number."
	MsgNothingToGoBack  = "No previous field to go back to."
	msgInvalidNumberFmt = "Invalid number. Please enter a number between 1 and %d."
)

// State is the position of a Session in the entry workflow.
type State int

const (
	StateSelectingCategory State = iota
	StateSelectingType
	StateCollectingField
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSelectingCategory:
		return "selecting_category"
	case StateSelectingType:
		return "selecting_type"
	case StateCollectingField:
		return "collecting_field"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Value is one collected field. Skipped fields are recorded too so that
// backtracking steps over them like any other answer.
type Value struct {
	Field   citation.Field
	Text    string
	Skipped bool
}

// Draft is the in-progress citation of a session.
type Draft struct {
	Category citation.Category
	Schema   citation.Schema
	Values   []Value
}

// Next returns the next field to collect, or false once all are collected.
func (d Draft) Next() (citation.Field, bool) {
	if len(d.Values) >= len(d.Schema.Fields) {
		return "", false
	}
	return d.Schema.Fields[len(d.Values)], true
}

// Fields returns the non-skipped values as a field set.
func (d Draft) Fields() citation.Fields {
	f := make(citation.Fields, len(d.Values))
	for _, v := range d.Values {
		if !v.Skipped {
			f[v.Field] = v.Text
		}
	}
	return f
}

// Result is the outcome of handling one line of input.
type Result struct {
	Messages []string
	// Citation is the rendered line when the input completed a citation.
	Citation string
	// Err is set when a completed draft failed to render. The draft is discarded.
	Err  error
	Done bool
}

// Session is the citation entry state machine. It performs no I/O.
type Session struct {
	state State
	draft Draft
}

// NewSession returns a session waiting for a category.
func NewSession() *Session {
	return &Session{state: StateSelectingCategory}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Draft returns a copy of the in-progress citation.
func (s *Session) Draft() Draft {
	d := s.draft
	d.Values = append([]Value(nil), s.draft.Values...)
	return d
}

// Prompt returns the text to show before reading the next line.
func (s *Session) Prompt() string {
	switch s.state {
	case StateSelectingCategory:
		return "Please enter the citation form (journal or book) or type 'quit' to exit: "
	case StateSelectingType:
		return "Enter the citation type number (or 'back'): "
	case StateCollectingField:
		field, _ := s.draft.Next()
		return fmt.Sprintf("Please enter the %s (type 'back' to go back or leave empty to skip): ", field.Prompt())
	}
	return ""
}

// Handle consumes one line of input and advances the state machine.
func (s *Session) Handle(input string) Result {
	input = strings.TrimSpace(input)
	switch s.state {
	case StateSelectingCategory:
		return s.handleCategory(input)
	case StateSelectingType:
		return s.handleType(input)
	case StateCollectingField:
		return s.handleField(input)
	}
	return Result{Done: true}
}

func (s *Session) handleCategory(input string) Result {
	if strings.EqualFold(input, TokenQuit) {
		s.state = StateDone
		return Result{Done: true}
	}

	cat, err := citation.ParseCategory(input)
	if err != nil {
		return Result{Messages: []string{MsgInvalidCategory}}
	}

	s.draft = Draft{Category: cat}
	s.state = StateSelectingType
	return Result{Messages: Menu(cat)}
}

func (s *Session) handleType(input string) Result {
	if strings.EqualFold(input, TokenBack) {
		s.reset()
		return Result{}
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return Result{Messages: []string{MsgNotANumber}}
	}

	schema, err := citation.Lookup(s.draft.Category, n)
	if err != nil {
		count := len(citation.Types(s.draft.Category))
		return Result{Messages: []string{fmt.Sprintf(msgInvalidNumberFmt, count)}}
	}

	s.draft.Schema = schema
	s.state = StateCollectingField
	return Result{}
}

func (s *Session) handleField(input string) Result {
	if strings.EqualFold(input, TokenBack) {
		if len(s.draft.Values) == 0 {
			return Result{Messages: []string{MsgNothingToGoBack}}
		}
		s.draft.Values = s.draft.Values[:len(s.draft.Values)-1]
		return Result{}
	}

	field, _ := s.draft.Next()
	s.draft.Values = append(s.draft.Values, Value{Field: field, Text: input, Skipped: input == ""})

	if _, more := s.draft.Next(); more {
		return Result{}
	}
	return s.build()
}

// build renders the completed draft and resets the session either way.
func (s *Session) build() Result {
	defer s.reset()

	c, err := citation.Build(s.draft.Schema.Kind, s.draft.Fields())
	if err == nil {
		var line string
		if line, err = c.Render(); err == nil {
			return Result{Citation: line}
		}
	}
	return Result{
		Messages: []string{fmt.Sprintf("Could not generate citation: %v", err)},
		Err:      err,
	}
}

func (s *Session) reset() {
	s.draft = Draft{}
	s.state = StateSelectingCategory
}

// Menu lists the citation types of a category as numbered lines.
func Menu(cat citation.Category) []string {
	types := citation.Types(cat)
	lines := make([]string, 0, len(types)+1)
	lines = append(lines, fmt.Sprintf("Please select a %s citation type:", cat))
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("%d. %s", t.Index, t.Label))
	}
	return lines
}
