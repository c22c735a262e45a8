// Package reflist persists sorted, numbered lists of entries in plain text files.
//
// Each line of a list file has the form "<ordinal>. <entry>". Ordinals are a
// presentation artifact: they are stripped on read and regenerated on every write.
package reflist

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// MaxLineCapacity is the maximum buffer size for reading a single list line.
const MaxLineCapacity = 1024 * 1024

var ordinalRe = regexp.MustCompile(`^\d+\.\s+`)

// StripOrdinal removes one leading "N. " prefix from a line.
func StripOrdinal(line string) string {
	return ordinalRe.ReplaceAllString(line, "")
}

// List is a list file kept sorted by its strategies.
type List struct {
	Path       string
	Strategies []Strategy
}

// New returns a List at path sorted by the given strategies, applied in order.
func New(path string, strategies ...Strategy) *List {
	return &List{Path: path, Strategies: strategies}
}

// Lines returns the entries of the list without ordinals.
// A missing file is an empty list.
func (l *List) Lines() ([]string, error) {
	return ReadEntries(l.Path)
}

// Append adds entries, re-sorts the whole list and rewrites the file.
// Entries are trimmed and blank ones dropped. Duplicates are kept as separate
// entries.
func (l *List) Append(entries ...string) error {
	existing, err := ReadEntries(l.Path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		// Normalize like ReadEntries so a rewrite never changes an entry.
		if e = strings.TrimSpace(e); e != "" {
			existing = append(existing, e)
		}
	}
	slog.Debug("appending to list", "path", l.Path, "added", len(entries), "total", len(existing))
	return l.write(existing)
}

// Resort re-sorts the list and rewrites the file.
func (l *List) Resort() error {
	entries, err := ReadEntries(l.Path)
	if err != nil {
		return err
	}
	return l.write(entries)
}

func (l *List) write(entries []string) error {
	for _, s := range l.Strategies {
		s.Sort(entries)
		slog.Debug("sorted list", "path", l.Path, "strategy", s.Name())
	}
	return WriteEntries(l.Path, entries)
}

// ReadEntries reads all non-blank lines of a list file with ordinals stripped.
func ReadEntries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening list file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, StripOrdinal(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}
	return entries, nil
}

// WriteEntries replaces the list file with entries numbered from 1.
func WriteEntries(path string, entries []string) error {
	var buf bytes.Buffer
	for i, e := range entries {
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString(". ")
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing list file: %w", err)
	}
	return nil
}
