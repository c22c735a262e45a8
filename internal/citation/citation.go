// Package citation defines the APA citation variants and the schema registry
// that describes which fields each variant collects.
package citation

// Kind identifies a citation variant.
type Kind int

const (
	KindJournalArticle Kind = iota + 1
	KindJournalArticleWithDOI
	KindAdvanceOnlineJournal
	KindElectronicJournalArticle
	KindNewspaperArticle
	KindBook
	KindBookChapter
	KindOnlineFirstChapter
	KindTranslatedBook
	KindPreprint
	KindOnlineDocument
	KindOnlineDatabase
)

var kindNames = map[Kind]string{
	KindJournalArticle:           "journal_article",
	KindJournalArticleWithDOI:    "journal_article_doi",
	KindAdvanceOnlineJournal:     "advance_online_journal",
	KindElectronicJournalArticle: "electronic_journal_article",
	KindNewspaperArticle:         "newspaper_article",
	KindBook:                     "book",
	KindBookChapter:              "book_chapter",
	KindOnlineFirstChapter:       "online_first_chapter",
	KindTranslatedBook:           "translated_book",
	KindPreprint:                 "preprint",
	KindOnlineDocument:           "online_document",
	KindOnlineDatabase:           "online_database",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Field names a single piece of citation metadata.
type Field string

const (
	FieldAuthors       Field = "authors"
	FieldYear          Field = "year"
	FieldTitle         Field = "title"
	FieldJournal       Field = "journal"
	FieldVolume        Field = "volume"
	FieldIssue         Field = "issue"
	FieldPages         Field = "pages"
	FieldDOI           Field = "doi"
	FieldArticleNumber Field = "article_number"
	FieldNewspaper     Field = "newspaper"
	FieldURL           Field = "url"
	FieldDate          Field = "date"
	FieldPublisher     Field = "publisher"
	FieldBookTitle     Field = "book_title"
	FieldEditors       Field = "editors"
	FieldEdition       Field = "edition"
	FieldTranslator    Field = "translator"
	FieldLocation      Field = "location"
	FieldOriginalYear  Field = "original_year"
	FieldDateRetrieved Field = "date_retrieved"
)

// Fields is a collected field set. A missing key means the field was skipped.
type Fields map[Field]string

// Citation is a single rendered-on-demand reference.
type Citation interface {
	Kind() Kind
	Render() (string, error)
}

// Common holds the fields shared by every variant.
type Common struct {
	Authors string
	Year    string
	Title   string
}

// JournalInfo holds the serial publication fields shared by the journal variants.
type JournalInfo struct {
	Journal string
	Volume  string
	Issue   string
}

type JournalArticle struct {
	Common
	JournalInfo
	Pages string
}

type JournalArticleWithDOI struct {
	JournalArticle
	DOI string
}

type AdvanceOnlineJournal struct {
	Common
	Journal string
	Volume  string
	DOI     string
}

// ElectronicJournalArticle has an article number in place of a page range.
type ElectronicJournalArticle struct {
	Common
	JournalInfo
	ArticleNumber string
	DOI           string
}

type NewspaperArticle struct {
	Common
	Newspaper string
	URL       string
	Date      string
}

type Book struct {
	Common
	Publisher string
}

type BookChapter struct {
	Common
	BookTitle string
	Editors   string
	Edition   string
	Pages     string
	Publisher string
}

type OnlineFirstChapter struct {
	Common
	BookTitle string
	DOI       string
}

type TranslatedBook struct {
	Common
	Translator   string
	Location     string
	Publisher    string
	OriginalYear string
}

type Preprint struct {
	Common
	URL string
}

type OnlineDocument struct {
	Common
	Publisher     string
	DateRetrieved string
	URL           string
}

// OnlineDatabase renders exactly like OnlineDocument.
type OnlineDatabase struct {
	OnlineDocument
}

func (JournalArticle) Kind() Kind           { return KindJournalArticle }
func (JournalArticleWithDOI) Kind() Kind    { return KindJournalArticleWithDOI }
func (AdvanceOnlineJournal) Kind() Kind     { return KindAdvanceOnlineJournal }
func (ElectronicJournalArticle) Kind() Kind { return KindElectronicJournalArticle }
func (NewspaperArticle) Kind() Kind         { return KindNewspaperArticle }
func (Book) Kind() Kind                     { return KindBook }
func (BookChapter) Kind() Kind              { return KindBookChapter }
func (OnlineFirstChapter) Kind() Kind       { return KindOnlineFirstChapter }
func (TranslatedBook) Kind() Kind           { return KindTranslatedBook }
func (Preprint) Kind() Kind                 { return KindPreprint }
func (OnlineDocument) Kind() Kind           { return KindOnlineDocument }
func (OnlineDatabase) Kind() Kind           { return KindOnlineDatabase }

// Build instantiates the variant for kind from a collected field set.
func Build(kind Kind, f Fields) (Citation, error) {
	common := Common{Authors: f[FieldAuthors], Year: f[FieldYear], Title: f[FieldTitle]}
	journal := JournalInfo{Journal: f[FieldJournal], Volume: f[FieldVolume], Issue: f[FieldIssue]}

	switch kind {
	case KindJournalArticle:
		return JournalArticle{Common: common, JournalInfo: journal, Pages: f[FieldPages]}, nil
	case KindJournalArticleWithDOI:
		return JournalArticleWithDOI{
			JournalArticle: JournalArticle{Common: common, JournalInfo: journal, Pages: f[FieldPages]},
			DOI:            f[FieldDOI],
		}, nil
	case KindAdvanceOnlineJournal:
		return AdvanceOnlineJournal{Common: common, Journal: f[FieldJournal], Volume: f[FieldVolume], DOI: f[FieldDOI]}, nil
	case KindElectronicJournalArticle:
		return ElectronicJournalArticle{
			Common:        common,
			JournalInfo:   journal,
			ArticleNumber: f[FieldArticleNumber],
			DOI:           f[FieldDOI],
		}, nil
	case KindNewspaperArticle:
		return NewspaperArticle{Common: common, Newspaper: f[FieldNewspaper], URL: f[FieldURL], Date: f[FieldDate]}, nil
	case KindBook:
		return Book{Common: common, Publisher: f[FieldPublisher]}, nil
	case KindBookChapter:
		return BookChapter{
			Common:    common,
			BookTitle: f[FieldBookTitle],
			Editors:   f[FieldEditors],
			Edition:   f[FieldEdition],
			Pages:     f[FieldPages],
			Publisher: f[FieldPublisher],
		}, nil
	case KindOnlineFirstChapter:
		return OnlineFirstChapter{Common: common, BookTitle: f[FieldBookTitle], DOI: f[FieldDOI]}, nil
	case KindTranslatedBook:
		return TranslatedBook{
			Common:       common,
			Translator:   f[FieldTranslator],
			Location:     f[FieldLocation],
			Publisher:    f[FieldPublisher],
			OriginalYear: f[FieldOriginalYear],
		}, nil
	case KindPreprint:
		return Preprint{Common: common, URL: f[FieldURL]}, nil
	case KindOnlineDocument:
		return onlineDocument(common, f), nil
	case KindOnlineDatabase:
		return OnlineDatabase{OnlineDocument: onlineDocument(common, f)}, nil
	}
	return nil, &UnknownKindError{Kind: kind}
}

func onlineDocument(common Common, f Fields) OnlineDocument {
	return OnlineDocument{
		Common:        common,
		Publisher:     f[FieldPublisher],
		DateRetrieved: f[FieldDateRetrieved],
		URL:           f[FieldURL],
	}
}
