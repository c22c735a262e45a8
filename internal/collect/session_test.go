package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/apa/internal/citation"
)

// feed sends inputs in order and returns the last result.
func feed(t *testing.T, s *Session, inputs ...string) Result {
	t.Helper()
	var res Result
	for _, in := range inputs {
		res = s.Handle(in)
	}
	return res
}

func TestSessionJournalArticle(t *testing.T) {
	s := NewSession()

	res := s.Handle("journal")
	assert.Equal(t, StateSelectingType, s.State())
	require.NotEmpty(t, res.Messages)
	assert.Equal(t, "1. Journal Article", res.Messages[1])

	res = feed(t, s, "1", "Smith, J.", "2020", "A Study", "Journal of X", "5", "2", "100-110")
	require.NoError(t, res.Err)
	assert.Equal(t, "Smith, J. (2020). A Study. Journal of X, 5(2), 100-110.", res.Citation)
	assert.Equal(t, StateSelectingCategory, s.State())
	assert.Empty(t, s.Draft().Values)
}

func TestSessionQuit(t *testing.T) {
	s := NewSession()
	res := s.Handle("  QUIT ")
	assert.True(t, res.Done)
	assert.Equal(t, StateDone, s.State())
}

func TestSessionInvalidCategory(t *testing.T) {
	s := NewSession()
	res := s.Handle("magazine")
	assert.Equal(t, []string{MsgInvalidCategory}, res.Messages)
	assert.Equal(t, StateSelectingCategory, s.State())
	assert.False(t, res.Done)
}

func TestSessionTypeSelection(t *testing.T) {
	s := NewSession()
	s.Handle("book")

	res := s.Handle("seven")
	assert.Equal(t, []string{MsgNotANumber}, res.Messages)
	assert.Equal(t, StateSelectingType, s.State())

	res = s.Handle("8")
	assert.Equal(t, []string{"Invalid number. Please enter a number between 1 and 7."}, res.Messages)
	assert.Equal(t, StateSelectingType, s.State())

	res = s.Handle("0")
	assert.Len(t, res.Messages, 1)

	s.Handle("4")
	assert.Equal(t, StateCollectingField, s.State())
	assert.Equal(t, citation.KindTranslatedBook, s.Draft().Schema.Kind)
	assert.Contains(t, s.Prompt(), "authors")
}

func TestSessionBackFromTypeSelection(t *testing.T) {
	s := NewSession()
	s.Handle("journal")
	s.Handle("back")
	assert.Equal(t, StateSelectingCategory, s.State())
}

func TestSessionBackOnFirstField(t *testing.T) {
	s := NewSession()
	feed(t, s, "book", "1")
	before := s.Prompt()

	res := s.Handle("back")
	assert.Equal(t, []string{MsgNothingToGoBack}, res.Messages)
	assert.Equal(t, StateCollectingField, s.State())
	assert.Empty(t, s.Draft().Values)
	assert.Equal(t, before, s.Prompt())
}

func TestSessionBackDiscardsLastField(t *testing.T) {
	s := NewSession()
	feed(t, s, "book", "1", "Smith, J.", "2019")
	assert.Contains(t, s.Prompt(), "title")

	s.Handle("BACK")
	assert.Contains(t, s.Prompt(), "year")
	require.Len(t, s.Draft().Values, 1)

	res := feed(t, s, "2020", "A Study", "Acme Press")
	assert.Equal(t, "Smith, J. (2020). A Study. Acme Press.", res.Citation)
}

func TestSessionBackStepsOverSkippedField(t *testing.T) {
	s := NewSession()
	feed(t, s, "book", "1", "Smith, J.", "")
	require.Len(t, s.Draft().Values, 2)
	assert.True(t, s.Draft().Values[1].Skipped)

	s.Handle("back")
	assert.Contains(t, s.Prompt(), "year")
}

func TestSessionTrimsInput(t *testing.T) {
	s := NewSession()
	res := feed(t, s, "book", "1", "  Smith, J.  ", "2020\n", "A  Study", "Acme")
	assert.Equal(t, "Smith, J. (2020). A  Study. Acme.", res.Citation)
}

func TestSessionSkippedFieldsRenderEmpty(t *testing.T) {
	s := NewSession()
	res := feed(t, s, "book", "1", "", "", "A Study", "")
	require.NoError(t, res.Err)
	assert.Equal(t, " (). A Study. .", res.Citation)
}

func TestSessionMissingRequiredFieldResets(t *testing.T) {
	s := NewSession()
	res := feed(t, s, "book", "5", "Smith, J.", "2020", "A Study", "")

	assert.Empty(t, res.Citation)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, citation.ErrMissingField)
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0], "url")
	assert.Equal(t, StateSelectingCategory, s.State())
	assert.Empty(t, s.Draft().Values)
}

func TestDraftFieldsOmitsSkipped(t *testing.T) {
	d := Draft{Values: []Value{
		{Field: citation.FieldAuthors, Text: "A"},
		{Field: citation.FieldYear, Skipped: true},
	}}
	assert.Equal(t, citation.Fields{citation.FieldAuthors: "A"}, d.Fields())
}
