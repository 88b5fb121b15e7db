// Package tokenize interns whole lines as integer tokens so the core
// engines can diff and merge files line by line.
package tokenize

import "strings"

// Table maps distinct lines to small integer tokens. One table must be
// shared by every input of a single diff or merge so equal lines intern to
// equal tokens.
type Table struct {
	lines []string
	ids   map[string]int
}

func NewTable() *Table {
	return &Table{ids: make(map[string]int)}
}

// Lines splits text into lines, each keeping its trailing newline (the last
// line may lack one), and interns them.
func (t *Table) Lines(text string) []int {
	var tokens []int
	for start := 0; start < len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end = start + end + 1
		}
		tokens = append(tokens, t.intern(text[start:end]))
		start = end
	}
	return tokens
}

func (t *Table) intern(line string) int {
	if id, ok := t.ids[line]; ok {
		return id
	}
	id := len(t.lines)
	t.ids[line] = id
	t.lines = append(t.lines, line)
	return id
}

// Decode concatenates the lines behind a token sequence. Lines keep their
// terminators, so decoding is plain concatenation.
func (t *Table) Decode(tokens []int) string {
	var b strings.Builder
	for _, id := range tokens {
		b.WriteString(t.lines[id])
	}
	return b.String()
}

// StripTrailingNewlines removes terminal newlines before comparison.
func StripTrailingNewlines(s string) string {
	return strings.TrimRight(s, "\n")
}
