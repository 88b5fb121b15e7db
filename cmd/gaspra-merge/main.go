package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/chojs23/gaspra/internal/cli"
	"github.com/chojs23/gaspra/internal/run"
)

var version = "dev"

func main() {
	opts, err := cli.ParseMerge(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprintln(os.Stdout, cli.MergeUsage())
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrVersion) {
			fmt.Fprintf(os.Stdout, "gaspra-merge %s\n", versionString())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run.Merge(opts, os.Stdout))
}

func versionString() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return version
	}
	return info.Main.Version
}
