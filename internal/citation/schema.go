package citation

import (
	"fmt"
	"strings"
)

// Category groups citation types for selection.
type Category string

const (
	CategoryJournal Category = "journal"
	// CategoryBook also covers non-journal prose: preprints, online documents and databases.
	CategoryBook Category = "book"
)

// Categories lists the categories in menu order.
var Categories = []Category{CategoryJournal, CategoryBook}

// Schema describes one selectable citation type.
type Schema struct {
	Category Category
	Index    int // 1-based position in the category menu
	Kind     Kind
	Label    string
	Fields   []Field
}

var (
	headFields    = []Field{FieldAuthors, FieldYear, FieldTitle}
	journalFields = []Field{FieldJournal, FieldVolume, FieldIssue}
	onlineFields  = []Field{FieldURL, FieldDateRetrieved, FieldPublisher}
)

// fields builds an ordered field list beginning with authors, year and title.
func fields(groups ...[]Field) []Field {
	out := append([]Field(nil), headFields...)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var registry = map[Category][]Schema{
	CategoryJournal: {
		{Kind: KindJournalArticle, Label: "Journal Article",
			Fields: fields(journalFields, []Field{FieldPages})},
		{Kind: KindJournalArticleWithDOI, Label: "Journal Article with DOI",
			Fields: fields(journalFields, []Field{FieldPages, FieldDOI})},
		{Kind: KindAdvanceOnlineJournal, Label: "Journal Article by DOI (advance online publication, no page numbers)",
			Fields: fields([]Field{FieldJournal, FieldVolume, FieldDOI})},
		{Kind: KindElectronicJournalArticle, Label: "Article in electronic journal by DOI (no paginated version)",
			Fields: fields(journalFields, []Field{FieldArticleNumber, FieldDOI})},
		{Kind: KindNewspaperArticle, Label: "Newspaper Article",
			Fields: fields([]Field{FieldNewspaper, FieldURL, FieldDate})},
	},
	CategoryBook: {
		{Kind: KindBook, Label: "Book",
			Fields: fields([]Field{FieldPublisher})},
		{Kind: KindBookChapter, Label: "Book Chapter",
			Fields: fields([]Field{FieldBookTitle, FieldEditors, FieldEdition, FieldPages, FieldPublisher})},
		{Kind: KindOnlineFirstChapter, Label: "OnlineFirst chapter in a series",
			Fields: fields([]Field{FieldBookTitle, FieldDOI})},
		{Kind: KindTranslatedBook, Label: "Translated Book",
			Fields: fields([]Field{FieldTranslator, FieldLocation, FieldPublisher, FieldOriginalYear})},
		{Kind: KindPreprint, Label: "Publicly available preprint",
			Fields: fields([]Field{FieldURL})},
		{Kind: KindOnlineDocument, Label: "Online document",
			Fields: fields(onlineFields)},
		{Kind: KindOnlineDatabase, Label: "Online database",
			Fields: fields(onlineFields)},
	},
}

func init() {
	for cat, schemas := range registry {
		for i := range schemas {
			schemas[i].Category = cat
			schemas[i].Index = i + 1
		}
	}
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	cat := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[cat]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return cat, nil
}

// Types returns the schemas of a category in menu order.
func Types(cat Category) []Schema {
	return append([]Schema(nil), registry[cat]...)
}

// Lookup returns the schema at the 1-based index of a category.
func Lookup(cat Category, index int) (Schema, error) {
	schemas := registry[cat]
	if index < 1 || index > len(schemas) {
		return Schema{}, &UnknownTypeError{Category: cat, Index: index}
	}
	s := schemas[index-1]
	s.Fields = append([]Field(nil), s.Fields...)
	return s, nil
}

// FieldsFor returns the ordered field names collected for a citation type.
func FieldsFor(cat Category, index int) ([]Field, error) {
	s, err := Lookup(cat, index)
	if err != nil {
		return nil, err
	}
	return s.Fields, nil
}

// LabelFor returns the display label of a citation type.
func LabelFor(cat Category, index int) (string, error) {
	s, err := Lookup(cat, index)
	if err != nil {
		return "", err
	}
	return s.Label, nil
}

// Prompt returns the field name as shown to a person, e.g. "book title".
func (f Field) Prompt() string {
	return strings.ReplaceAll(string(f), "_", " ")
}
