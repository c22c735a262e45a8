package citation

import "fmt"

const doiPrefix = "https://doi.org/"

// requireFields returns a MissingFieldError for the first empty value in pairs
// (field, value, field, value, ...).
func requireFields(kind Kind, pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if v, _ := pairs[i+1].(string); v == "" {
			return &MissingFieldError{Kind: kind, Field: pairs[i].(Field)}
		}
	}
	return nil
}

// head renders the "Authors (Year). Title." lead shared by most variants.
func (c Common) head() string {
	return fmt.Sprintf("%s (%s). %s.", c.Authors, c.Year, c.Title)
}

func (j JournalArticle) body() string {
	return fmt.Sprintf("%s %s, %s(%s), %s.", j.head(), j.Journal, j.Volume, j.Issue, j.Pages)
}

func (j JournalArticle) Render() (string, error) {
	if err := requireFields(j.Kind(), FieldTitle, j.Title); err != nil {
		return "", err
	}
	return j.body(), nil
}

func (j JournalArticleWithDOI) Render() (string, error) {
	if err := requireFields(j.Kind(), FieldTitle, j.Title, FieldDOI, j.DOI); err != nil {
		return "", err
	}
	return j.body() + " " + doiPrefix + j.DOI, nil
}

func (a AdvanceOnlineJournal) Render() (string, error) {
	if err := requireFields(a.Kind(), FieldTitle, a.Title, FieldDOI, a.DOI); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s. %s Advance online publication. %s%s",
		a.head(), a.Journal, a.Volume, doiPrefix, a.DOI), nil
}

func (e ElectronicJournalArticle) Render() (string, error) {
	err := requireFields(e.Kind(),
		FieldTitle, e.Title,
		FieldArticleNumber, e.ArticleNumber,
		FieldDOI, e.DOI)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s, %s(%s), Article %s. %s%s",
		e.head(), e.Journal, e.Volume, e.Issue, e.ArticleNumber, doiPrefix, e.DOI), nil
}

func (n NewspaperArticle) Render() (string, error) {
	if err := requireFields(n.Kind(), FieldTitle, n.Title, FieldURL, n.URL); err != nil {
		return "", err
	}
	// The issue date sits inside the year parenthetical.
	return fmt.Sprintf("%s (%s, %s). %s. %s. %s",
		n.Authors, n.Year, n.Date, n.Title, n.Newspaper, n.URL), nil
}

func (b Book) Render() (string, error) {
	if err := requireFields(b.Kind(), FieldTitle, b.Title); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s.", b.head(), b.Publisher), nil
}

func (c BookChapter) Render() (string, error) {
	if err := requireFields(c.Kind(), FieldTitle, c.Title); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s In %s (Eds.), %s (%s, pp. %s). %s.",
		c.head(), c.Editors, c.BookTitle, c.Edition, c.Pages, c.Publisher), nil
}

func (c OnlineFirstChapter) Render() (string, error) {
	if err := requireFields(c.Kind(), FieldTitle, c.Title, FieldDOI, c.DOI); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s. Advance online publication. %s%s",
		c.head(), c.BookTitle, doiPrefix, c.DOI), nil
}

func (t TranslatedBook) Render() (string, error) {
	if err := requireFields(t.Kind(), FieldTitle, t.Title); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s). %s (%s, Trans.). %s: %s. (Original work published %s)",
		t.Authors, t.Year, t.Title, t.Translator, t.Location, t.Publisher, t.OriginalYear), nil
}

func (p Preprint) Render() (string, error) {
	if err := requireFields(p.Kind(), FieldTitle, p.Title, FieldURL, p.URL); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Preprint retrieved from %s", p.head(), p.URL), nil
}

func (d OnlineDocument) Render() (string, error) {
	return d.render(d.Kind())
}

func (d OnlineDatabase) Render() (string, error) {
	return d.render(d.Kind())
}

func (d OnlineDocument) render(kind Kind) (string, error) {
	if err := requireFields(kind, FieldTitle, d.Title, FieldURL, d.URL); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s. Retrieved %s, from %s", d.head(), d.Publisher, d.DateRetrieved, d.URL), nil
}
