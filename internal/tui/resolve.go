// Package tui is the interactive conflict resolver behind gaspra-merge -i.
// It walks the conflicts of a merged stream and lets the user keep either
// side, or both, with undo.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chojs23/gaspra/internal/render"
)

// ErrAborted is returned when the user quits without resolving.
var ErrAborted = errors.New("interactive resolution aborted")

// Resolution is the user's choice for one conflict.
type Resolution int

const (
	Unset Resolution = iota
	Ours
	Theirs
	Both
)

const maxUndo = 100

// Resolve runs the picker over a merged stream and returns the fully
// resolved text. segs must come from render.CharSegments or
// render.LineSegments on a Merge result.
func Resolve(segs []render.Segment, oursLabel, theirsLabel string) (string, error) {
	m := newModel(segs, oursLabel, theirsLabel)
	if len(m.conflicts) == 0 {
		text, _ := Apply(segs, nil)
		return text, nil
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run resolver: %w", err)
	}
	final, ok := out.(model)
	if !ok || final.aborted {
		return "", ErrAborted
	}
	text, done := Apply(final.segs, final.resolutions)
	if !done {
		return "", ErrAborted
	}
	return text, nil
}

// Apply assembles the resolved text. The second result reports whether
// every conflict had a resolution.
func Apply(segs []render.Segment, resolutions []Resolution) (string, bool) {
	var b strings.Builder
	done := true
	conflict := 0
	for _, seg := range segs {
		switch seg.Kind {
		case render.KindRun:
			b.WriteString(seg.Text)
		case render.KindChange:
			b.WriteString(seg.Insert)
		case render.KindConflict:
			res := Unset
			if conflict < len(resolutions) {
				res = resolutions[conflict]
			}
			conflict++
			switch res {
			case Ours:
				b.WriteString(seg.Ours)
			case Theirs:
				b.WriteString(seg.Theirs)
			case Both:
				b.WriteString(seg.Ours)
				b.WriteString(seg.Theirs)
			default:
				done = false
			}
		}
	}
	return b.String(), done
}

type model struct {
	segs        []render.Segment
	conflicts   []int // indexes of conflict segments within segs
	resolutions []Resolution
	cursor      int

	undo [][]Resolution

	oursLabel   string
	theirsLabel string

	theme    theme
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	aborted bool
}

func newModel(segs []render.Segment, oursLabel, theirsLabel string) model {
	var conflicts []int
	for i, seg := range segs {
		if seg.Kind == render.KindConflict {
			conflicts = append(conflicts, i)
		}
	}
	return model{
		segs:        segs,
		conflicts:   conflicts,
		resolutions: make([]Resolution, len(conflicts)),
		oursLabel:   oursLabel,
		theirsLabel: theirsLabel,
		theme:       defaultTheme(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chrome := 4 // header, status, footer, spacer
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-chrome))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-chrome)
		}
		m.viewport.SetContent(m.renderDocument())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit

		case "o":
			return m.choose(Ours), nil
		case "t":
			return m.choose(Theirs), nil
		case "b":
			return m.choose(Both), nil

		case "u":
			return m.undoLast(), nil

		case "n", "right":
			if m.cursor < len(m.conflicts)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case "p", "left":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil

		case "enter", "w":
			if m.resolvedCount() == len(m.conflicts) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// choose records the resolution for the current conflict and advances to
// the next unresolved one. Prior state goes on the undo stack.
func (m model) choose(res Resolution) model {
	if len(m.conflicts) == 0 {
		return m
	}
	m.pushUndo()
	m.resolutions[m.cursor] = res
	for i := 1; i <= len(m.conflicts); i++ {
		next := (m.cursor + i) % len(m.conflicts)
		if m.resolutions[next] == Unset {
			m.cursor = next
			break
		}
	}
	m.refresh()
	return m
}

func (m *model) pushUndo() {
	snapshot := make([]Resolution, len(m.resolutions))
	copy(snapshot, m.resolutions)
	m.undo = append(m.undo, snapshot)
	if len(m.undo) > maxUndo {
		m.undo = m.undo[1:]
	}
	m.resolutions = append([]Resolution(nil), m.resolutions...)
}

func (m model) undoLast() model {
	if len(m.undo) == 0 {
		return m
	}
	m.resolutions = m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.refresh()
	return m
}

func (m *model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.renderDocument())
	}
}

func (m model) resolvedCount() int {
	count := 0
	for _, res := range m.resolutions {
		if res != Unset {
			count++
		}
	}
	return count
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.theme.header.Render(fmt.Sprintf("gaspra-merge — %d/%d resolved", m.resolvedCount(), len(m.conflicts)))
	status := m.theme.status.Render(fmt.Sprintf("conflict %d of %d", m.cursor+1, len(m.conflicts)))
	footer := m.theme.footer.Render("o ours · t theirs · b both · u undo · n/p next/prev · enter write · q quit")

	return strings.Join([]string{header, status, m.viewport.View(), footer}, "\n")
}

// renderDocument shows the whole merged document with the conflicts marked
// and the current one highlighted.
func (m model) renderDocument() string {
	var b strings.Builder
	conflict := 0
	for _, seg := range m.segs {
		switch seg.Kind {
		case render.KindRun:
			b.WriteString(seg.Text)
		case render.KindChange:
			b.WriteString(m.theme.applied.Render(seg.Insert))
		case render.KindConflict:
			b.WriteString(m.renderConflict(seg, conflict))
			conflict++
		}
	}
	return b.String()
}

func (m model) renderConflict(seg render.Segment, index int) string {
	marker := m.theme.marker
	if index == m.cursor {
		marker = m.theme.activeMarker
	}

	switch m.resolutions[index] {
	case Ours:
		return m.theme.ours.Render(seg.Ours)
	case Theirs:
		return m.theme.theirs.Render(seg.Theirs)
	case Both:
		return m.theme.ours.Render(seg.Ours) + m.theme.theirs.Render(seg.Theirs)
	}

	var b strings.Builder
	b.WriteString(marker.Render("<<<<<<< "+m.oursLabel) + "\n")
	b.WriteString(m.theme.ours.Render(strings.TrimSuffix(seg.Ours, "\n")) + "\n")
	b.WriteString(marker.Render("=======") + "\n")
	b.WriteString(m.theme.theirs.Render(strings.TrimSuffix(seg.Theirs, "\n")) + "\n")
	b.WriteString(marker.Render(">>>>>>> "+m.theirsLabel) + "\n")
	return b.String()
}
