package tokenize

import (
	"reflect"
	"testing"
)

func TestLinesRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"one line no newline",
		"a\nb\nc\n",
		"a\nb\nc",
		"\n\n\n",
		"trailing\n",
	}
	for _, text := range cases {
		table := NewTable()
		tokens := table.Lines(text)
		if got := table.Decode(tokens); got != text {
			t.Errorf("Decode(Lines(%q)) = %q", text, got)
		}
	}
}

func TestLinesInternsEqualLines(t *testing.T) {
	table := NewTable()
	a := table.Lines("x\ny\nx\n")
	if a[0] != a[2] {
		t.Errorf("equal lines interned differently: %v", a)
	}
	if a[0] == a[1] {
		t.Errorf("distinct lines interned equally: %v", a)
	}

	b := table.Lines("y\nz\n")
	if b[0] != a[1] {
		t.Error("shared table did not reuse token for equal line")
	}
}

func TestLinesSharedTableAcrossInputs(t *testing.T) {
	table := NewTable()
	left := table.Lines("common\nleft\n")
	right := table.Lines("common\nright\n")
	if left[0] != right[0] {
		t.Error("common line has different tokens in two inputs")
	}
	if reflect.DeepEqual(left, right) {
		t.Error("distinct inputs tokenized identically")
	}
}

func TestStripTrailingNewlines(t *testing.T) {
	if got := StripTrailingNewlines("a\nb\n\n\n"); got != "a\nb" {
		t.Errorf("got %q", got)
	}
	if got := StripTrailingNewlines("ab"); got != "ab" {
		t.Errorf("got %q", got)
	}
}
