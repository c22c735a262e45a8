package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type recordingList struct {
	entries []string
	fail    string
}

func (r *recordingList) Append(entries ...string) error {
	for _, e := range entries {
		if e == r.fail {
			return errors.New("disk full")
		}
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func TestAppendLoop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "stops at exit",
			input: "Nature\nScience\nexit\nCell\n",
			want:  []string{"Nature", "Science"},
		},
		{
			name:  "exit is case insensitive",
			input: "Nature\n  EXIT \n",
			want:  []string{"Nature"},
		},
		{
			name:  "stops at end of input",
			input: "Nature\nCell",
			want:  []string{"Nature", "Cell"},
		},
		{
			name:  "blank lines skipped",
			input: "\n   \nNature\nexit\n",
			want:  []string{"Nature"},
		},
		{
			name:  "duplicates kept",
			input: "Nature\nNature\n",
			want:  []string{"Nature", "Nature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := &recordingList{}
			var out bytes.Buffer
			if err := appendLoop(strings.NewReader(tt.input), &out, list, "journals.txt"); err != nil {
				t.Fatalf("appendLoop() unexpected error: %v", err)
			}
			if strings.Join(list.entries, "|") != strings.Join(tt.want, "|") {
				t.Errorf("appended %q, want %q", list.entries, tt.want)
			}
		})
	}
}

func TestAppendLoop_Messages(t *testing.T) {
	list := &recordingList{fail: "Broken"}
	var out bytes.Buffer
	if err := appendLoop(strings.NewReader("Nature\nBroken\nexit\n"), &out, list, "journals.txt"); err != nil {
		t.Fatalf("appendLoop() unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "'Nature' has been added to journals.txt.") {
		t.Errorf("output missing confirmation: %q", got)
	}
	if !strings.Contains(got, "Could not add 'Broken': disk full") {
		t.Errorf("output missing failure report: %q", got)
	}
	if len(list.entries) != 1 {
		t.Errorf("appended %d entries, want 1", len(list.entries))
	}
}
