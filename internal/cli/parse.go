package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

var ErrHelp = errors.New("help requested")
var ErrVersion = errors.New("version requested")

// ParseDiff parses arguments for gaspra-diff: flags plus FILE1 FILE2.
func ParseDiff(args []string) (Options, error) {
	opts, fs, err := parseCommon("gaspra-diff", args, false)
	if err != nil {
		return Options{}, err
	}
	if fs.NArg() != 2 {
		return Options{}, fmt.Errorf("expected 2 files, got %d\n\n%s", fs.NArg(), DiffUsage())
	}
	opts.Paths = fs.Args()
	return opts, nil
}

// ParseMerge parses arguments for gaspra-merge: flags plus ANCESTOR FILE_A
// FILE_B.
func ParseMerge(args []string) (Options, error) {
	opts, fs, err := parseCommon("gaspra-merge", args, true)
	if err != nil {
		return Options{}, err
	}
	if fs.NArg() != 3 {
		return Options{}, fmt.Errorf("expected 3 files, got %d\n\n%s", fs.NArg(), MergeUsage())
	}
	opts.Paths = fs.Args()
	return opts, nil
}

func parseCommon(name string, args []string, withInteractive bool) (Options, *flag.FlagSet, error) {
	var opts Options
	var help bool
	var showVersion bool

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.Strip, "s", false, "Strip trailing newlines before comparison")
	fs.BoolVar(&opts.LineMode, "d", false, "Compare line by line instead of character by character")
	fs.BoolVar(&opts.Color, "c", false, "Force color output")
	if withInteractive {
		fs.BoolVar(&opts.Interactive, "i", false, "Resolve conflicts interactively")
	}
	fs.BoolVar(&help, "help", false, "Show help")
	fs.BoolVar(&help, "h", false, "Show help")
	fs.BoolVar(&showVersion, "version", false, "Show version")

	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return Options{}, nil, fmt.Errorf("%w\n\n%s", err, usageFor(name))
	}
	if help {
		return Options{}, nil, ErrHelp
	}
	if showVersion {
		return Options{}, nil, ErrVersion
	}

	return opts, fs, nil
}

func usageFor(name string) string {
	if name == "gaspra-merge" {
		return MergeUsage()
	}
	return DiffUsage()
}

func DiffUsage() string {
	return strings.TrimSpace(`Usage:
	  gaspra-diff [flags] FILE1 FILE2

Prints the change stream turning FILE1 into FILE2.

Options:
	  -s                          Strip trailing newlines before comparison
	  -d                          Line-oriented comparison (default character-oriented)
	  -c                          Force color output
	  -version                    Show version
`)
}

func MergeUsage() string {
	return strings.TrimSpace(`Usage:
	  gaspra-merge [flags] ANCESTOR FILE_A FILE_B

Prints the three-way merge of FILE_A and FILE_B against ANCESTOR.
Exits 0 when the merge is clean, 1 when conflicts remain, 2 on error.

Options:
	  -s                          Strip trailing newlines before comparison
	  -d                          Line-oriented comparison (default character-oriented)
	  -c                          Force color output
	  -i                          Resolve conflicts interactively
	  -version                    Show version
`)
}
