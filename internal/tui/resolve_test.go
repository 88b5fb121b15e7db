package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chojs23/gaspra/internal/render"
)

func testSegments() []render.Segment {
	return []render.Segment{
		{Kind: render.KindRun, Text: "head\n"},
		{Kind: render.KindConflict, Ours: "left one\n", Theirs: "right one\n"},
		{Kind: render.KindRun, Text: "middle\n"},
		{Kind: render.KindConflict, Ours: "left two\n", Theirs: "right two\n"},
		{Kind: render.KindRun, Text: "tail\n"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return out
}

func TestApplyResolutions(t *testing.T) {
	segs := testSegments()

	text, done := Apply(segs, []Resolution{Ours, Theirs})
	if !done {
		t.Fatal("expected all conflicts resolved")
	}
	want := "head\nleft one\nmiddle\nright two\ntail\n"
	if text != want {
		t.Errorf("Apply = %q, want %q", text, want)
	}

	if _, done := Apply(segs, []Resolution{Ours, Unset}); done {
		t.Error("unresolved conflict reported as done")
	}

	text, done = Apply(segs, []Resolution{Both, Both})
	if !done || !strings.Contains(text, "left one\nright one\n") {
		t.Errorf("Both resolution = %q", text)
	}
}

func TestApplyChangesAreResolvedContent(t *testing.T) {
	segs := []render.Segment{
		{Kind: render.KindRun, Text: "a "},
		{Kind: render.KindChange, Insert: "new", Delete: "old"},
	}
	text, done := Apply(segs, nil)
	if !done || text != "a new" {
		t.Errorf("Apply = (%q, %v), want (%q, true)", text, done, "a new")
	}
}

func TestChooseAdvancesToNextUnresolved(t *testing.T) {
	m := newModel(testSegments(), "A", "B")
	if len(m.conflicts) != 2 {
		t.Fatalf("found %d conflicts, want 2", len(m.conflicts))
	}

	m = update(t, m, key("o"))
	if m.resolutions[0] != Ours {
		t.Errorf("resolution[0] = %v, want Ours", m.resolutions[0])
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m = update(t, m, key("t"))
	if m.resolutions[1] != Theirs {
		t.Errorf("resolution[1] = %v, want Theirs", m.resolutions[1])
	}
	if m.resolvedCount() != 2 {
		t.Errorf("resolvedCount = %d, want 2", m.resolvedCount())
	}
}

func TestUndoRestoresPreviousState(t *testing.T) {
	m := newModel(testSegments(), "A", "B")
	m = update(t, m, key("o"))
	m = update(t, m, key("b"))
	m = update(t, m, key("u"))

	if m.resolutions[0] != Ours || m.resolutions[1] != Unset {
		t.Errorf("after undo: %v, want [Ours Unset]", m.resolutions)
	}

	m = update(t, m, key("u"))
	if m.resolutions[0] != Unset {
		t.Errorf("after second undo: %v, want all Unset", m.resolutions)
	}

	// Undo on an empty stack is a no-op.
	m = update(t, m, key("u"))
	if m.resolutions[0] != Unset || m.resolutions[1] != Unset {
		t.Errorf("undo past empty stack changed state: %v", m.resolutions)
	}
}

func TestNavigation(t *testing.T) {
	m := newModel(testSegments(), "A", "B")
	m = update(t, m, key("n"))
	if m.cursor != 1 {
		t.Errorf("cursor after n = %d, want 1", m.cursor)
	}
	m = update(t, m, key("n"))
	if m.cursor != 1 {
		t.Errorf("cursor clamped = %d, want 1", m.cursor)
	}
	m = update(t, m, key("p"))
	if m.cursor != 0 {
		t.Errorf("cursor after p = %d, want 0", m.cursor)
	}
}

func TestQuitAborts(t *testing.T) {
	m := newModel(testSegments(), "A", "B")
	next, cmd := m.Update(key("q"))
	out := next.(model)
	if !out.aborted {
		t.Error("q did not abort")
	}
	if cmd == nil {
		t.Error("q did not quit the program")
	}
}

func TestEnterOnlyFinishesWhenResolved(t *testing.T) {
	m := newModel(testSegments(), "A", "B")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter finished with unresolved conflicts")
	}

	m = update(t, m, key("o"))
	m = update(t, m, key("o"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter did not finish with everything resolved")
	}
}
