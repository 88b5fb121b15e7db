// Package run wires file input, the core engines, and rendering into the
// two command-line front ends.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chojs23/gaspra"
	"github.com/chojs23/gaspra/internal/cli"
	"github.com/chojs23/gaspra/internal/render"
	"github.com/chojs23/gaspra/internal/tokenize"
	"github.com/chojs23/gaspra/internal/tui"
)

// Diff runs gaspra-diff. Returns 0 on success, 2 on failure.
func Diff(opts cli.Options, stdout io.Writer) int {
	texts, err := readInputs(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	segs, err := diffSegments(opts, texts[0], texts[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	r := render.New(colorEnabled(opts, stdout))
	fmt.Fprintln(stdout, r.Diff(segs, opts.LineMode, filepath.Base(opts.Paths[1]), filepath.Base(opts.Paths[0])))
	return 0
}

// Merge runs gaspra-merge. Returns 0 for a clean merge, 1 when conflicts
// remain, 2 on failure.
func Merge(opts cli.Options, stdout io.Writer) int {
	texts, err := readInputs(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	segs, conflicted, err := mergeSegments(opts, texts[0], texts[1], texts[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	labelA := filepath.Base(opts.Paths[1])
	labelB := filepath.Base(opts.Paths[2])

	if conflicted && opts.Interactive {
		text, err := tui.Resolve(segs, labelA, labelB)
		if err == nil {
			fmt.Fprint(stdout, text)
			return 0
		}
		if !errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		// Fall through: print the conflicted result instead.
	}

	r := render.New(colorEnabled(opts, stdout))
	fmt.Fprint(stdout, r.Merge(segs, labelA, labelB))
	if conflicted {
		return 1
	}
	return 0
}

func readInputs(opts cli.Options) ([]string, error) {
	texts := make([]string, len(opts.Paths))
	for i, path := range opts.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		text := string(data)
		if opts.Strip {
			text = tokenize.StripTrailingNewlines(text)
		}
		texts[i] = text
	}
	return texts, nil
}

func diffSegments(opts cli.Options, original, modified string) ([]render.Segment, error) {
	if opts.LineMode {
		table := tokenize.NewTable()
		stream, err := gaspra.Diff(table.Lines(original), table.Lines(modified))
		if err != nil {
			return nil, err
		}
		return render.LineSegments(stream, table), nil
	}
	stream, err := gaspra.Diff([]rune(original), []rune(modified))
	if err != nil {
		return nil, err
	}
	return render.CharSegments(stream), nil
}

func mergeSegments(opts cli.Options, ancestor, a, b string) ([]render.Segment, bool, error) {
	if opts.LineMode {
		table := tokenize.NewTable()
		stream, err := gaspra.Merge(table.Lines(ancestor), table.Lines(a), table.Lines(b))
		if err != nil {
			return nil, false, err
		}
		return render.LineSegments(stream, table), gaspra.HasConflict(stream), nil
	}
	stream, err := gaspra.Merge([]rune(ancestor), []rune(a), []rune(b))
	if err != nil {
		return nil, false, err
	}
	return render.CharSegments(stream), gaspra.HasConflict(stream), nil
}

func colorEnabled(opts cli.Options, stdout io.Writer) bool {
	if opts.Color {
		return true
	}
	if f, ok := stdout.(*os.File); ok {
		return render.AutoColor(f)
	}
	return false
}
