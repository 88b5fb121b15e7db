// Package render turns change streams into terminal output: styled inline
// text for character mode, marker blocks for line mode.
package render

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/chojs23/gaspra"
	"github.com/chojs23/gaspra/internal/tokenize"
)

// Kind discriminates renderable segments.
type Kind int

const (
	KindRun Kind = iota
	KindChange
	KindConflict
)

// Segment is one already-detokenized piece of a diff or merge result.
type Segment struct {
	Kind Kind

	Text string // run content

	Insert string // change sides
	Delete string

	Ours   string // conflict alternatives
	Theirs string
}

// CharSegments detokenizes a character-level stream.
func CharSegments(stream []gaspra.Element[rune]) []Segment {
	out := make([]Segment, 0, len(stream))
	for _, el := range stream {
		switch e := el.(type) {
		case gaspra.Run[rune]:
			out = append(out, Segment{Kind: KindRun, Text: string(e.Tokens)})
		case gaspra.Change[rune]:
			out = append(out, Segment{Kind: KindChange, Insert: string(e.Insert), Delete: string(e.Delete)})
		case gaspra.Conflict[rune]:
			out = append(out, Segment{Kind: KindConflict, Ours: string(e.Ours), Theirs: string(e.Theirs)})
		}
	}
	return out
}

// LineSegments detokenizes a line-level stream through the interning table.
func LineSegments(stream []gaspra.Element[int], table *tokenize.Table) []Segment {
	out := make([]Segment, 0, len(stream))
	for _, el := range stream {
		switch e := el.(type) {
		case gaspra.Run[int]:
			out = append(out, Segment{Kind: KindRun, Text: table.Decode(e.Tokens)})
		case gaspra.Change[int]:
			out = append(out, Segment{Kind: KindChange, Insert: table.Decode(e.Insert), Delete: table.Decode(e.Delete)})
		case gaspra.Conflict[int]:
			out = append(out, Segment{Kind: KindConflict, Ours: table.Decode(e.Ours), Theirs: table.Decode(e.Theirs)})
		}
	}
	return out
}

// AutoColor reports whether f is a terminal that can take styled output.
func AutoColor(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer formats segments with a theme. With color disabled it falls back
// to textual markers: {+inserted+} and [-deleted-] inline, git-style marker
// blocks for conflicts and line-mode changes.
type Renderer struct {
	theme   Theme
	colored bool
}

func New(colored bool) Renderer {
	theme := PlainTheme()
	if colored {
		theme = DefaultTheme()
	}
	return Renderer{theme: theme, colored: colored}
}

// Diff renders a two-way change stream. In line mode each change becomes a
// marker block naming the two inputs; in character mode changes render
// inline.
func (r Renderer) Diff(segs []Segment, lineMode bool, intoLabel, fromLabel string) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case KindRun:
			b.WriteString(seg.Text)
		case KindChange:
			if lineMode {
				r.markerBlock(&b, seg.Insert, seg.Delete, intoLabel, fromLabel)
				continue
			}
			r.inlineChange(&b, seg.Insert, seg.Delete)
		}
	}
	return b.String()
}

// Merge renders a merged stream: runs and change inserts are the resolved
// content, conflicts become marker blocks in both modes.
func (r Renderer) Merge(segs []Segment, oursLabel, theirsLabel string) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case KindRun:
			b.WriteString(seg.Text)
		case KindChange:
			b.WriteString(seg.Insert)
		case KindConflict:
			r.markerBlock(&b, seg.Ours, seg.Theirs, oursLabel, theirsLabel)
		}
	}
	return b.String()
}

func (r Renderer) inlineChange(b *strings.Builder, insert, delete string) {
	if r.colored {
		if insert != "" {
			b.WriteString(r.theme.Insert.Render(insert))
		}
		if delete != "" {
			b.WriteString(r.theme.Delete.Render(delete))
		}
		return
	}
	if insert != "" {
		b.WriteString("{+")
		b.WriteString(insert)
		b.WriteString("+}")
	}
	if delete != "" {
		b.WriteString("[-")
		b.WriteString(delete)
		b.WriteString("-]")
	}
}

func (r Renderer) markerBlock(b *strings.Builder, first, second, firstLabel, secondLabel string) {
	ensureBreak(b)
	b.WriteString(r.theme.Marker.Render("<<<<<<< " + firstLabel))
	b.WriteString("\n")
	writeChunk(b, r.theme.Ours, first, r.colored)
	b.WriteString(r.theme.Marker.Render("======="))
	b.WriteString("\n")
	writeChunk(b, r.theme.Theirs, second, r.colored)
	b.WriteString(r.theme.Marker.Render(">>>>>>> " + secondLabel))
	b.WriteString("\n")
}

func writeChunk(b *strings.Builder, style Style, chunk string, colored bool) {
	if chunk == "" {
		return
	}
	if colored {
		chunk = style.Render(strings.TrimSuffix(chunk, "\n")) + "\n"
	} else if !strings.HasSuffix(chunk, "\n") {
		chunk += "\n"
	}
	b.WriteString(chunk)
}

// ensureBreak starts marker blocks on their own line even after a run that
// does not end with a newline.
func ensureBreak(b *strings.Builder) {
	s := b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}
