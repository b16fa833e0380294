package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lilhook/lilhook/internal/config"
	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/shared"
)

// runFmt rewrites a document in canonical form: stable key order, two-space
// indentation, zero-valued optional fields dropped.
func runFmt(settings *config.Settings, args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write result back to the file instead of stdout")
	_ = fs.Parse(args)

	path := documentPath(settings, fs.Arg(0))

	cfg, err := hookcfg.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	out, err := hookcfg.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	if *write {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, fmt.Sprintf("Error: %v", err)))
			return 1
		}
		return 0
	}

	os.Stdout.Write(out)
	return 0
}
