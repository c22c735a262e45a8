package reflist

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/cases"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown sort strategy")

// Strategy reorders list entries in place. Entries carry no ordinal prefix.
type Strategy interface {
	Name() string
	Sort(entries []string)
}

const (
	LexicographicName = "lexicographic"
	InitialsName      = "initials"
)

// DefaultStrategies is the order applied to citation lists. The last strategy
// determines the persisted order; earlier ones only break its ties.
var DefaultStrategies = []string{LexicographicName, InitialsName}

// Lexicographic orders entries by their case-folded text.
type Lexicographic struct{}

func (Lexicographic) Name() string { return LexicographicName }

func (Lexicographic) Sort(entries []string) {
	sortByKey(entries, FoldKey)
}

// Initials orders entries by the pinyin initials of the CJK characters in
// their author segment.
type Initials struct{}

func (Initials) Name() string { return InitialsName }

func (Initials) Sort(entries []string) {
	sortByKey(entries, InitialsKey)
}

// ParseStrategy resolves a strategy by name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LexicographicName, "lex", "alpha":
		return Lexicographic{}, nil
	case InitialsName, "pinyin", "chinese":
		return Initials{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies resolves a list of strategy names, preserving order.
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// sortByKey stable-sorts entries by a derived key, computing each key once.
func sortByKey(entries []string, key func(string) string) {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = key(e)
	}
	sort.Stable(keyedEntries{entries: entries, keys: keys})
}

type keyedEntries struct {
	entries []string
	keys    []string
}

func (k keyedEntries) Len() int           { return len(k.entries) }
func (k keyedEntries) Less(i, j int) bool { return k.keys[i] < k.keys[j] }
func (k keyedEntries) Swap(i, j int) {
	k.entries[i], k.entries[j] = k.entries[j], k.entries[i]
	k.keys[i], k.keys[j] = k.keys[j], k.keys[i]
}

// FoldKey returns the case-folded form of an entry.
func FoldKey(entry string) string {
	return cases.Fold().String(entry)
}

var pinyinArgs = pinyin.NewArgs()

// isHan reports whether r is in the CJK unified ideograph range U+4E00..U+9FA5.
func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}

// InitialsKey derives the transliterated-initials key of an entry: the text
// before the first period, reduced to its CJK ideographs, converted to pinyin,
// with the first letter of each syllable concatenated. Entries without CJK
// characters yield "".
func InitialsKey(entry string) string {
	author, _, _ := strings.Cut(entry, ".")

	var han strings.Builder
	for _, r := range author {
		if isHan(r) {
			han.WriteRune(r)
		}
	}
	if han.Len() == 0 {
		return ""
	}

	var key strings.Builder
	for _, syllable := range pinyin.LazyPinyin(han.String(), pinyinArgs) {
		if syllable != "" {
			key.WriteByte(syllable[0])
		}
	}
	return key.String()
}
