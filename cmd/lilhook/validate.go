package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lilhook/lilhook/internal/config"
	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/schema"
	"github.com/lilhook/lilhook/internal/shared"
)

// runValidate parses and validates one document. Exit code 0 means the
// document is valid; 1 means it is not or could not be read.
func runValidate(settings *config.Settings, args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	strict := fs.Bool("strict", settings.Strict, "also run the JSON Schema pass")
	quiet := fs.Bool("quiet", false, "suppress success output")
	_ = fs.Parse(args)

	path := documentPath(settings, fs.Arg(0))

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, fmt.Sprintf("Error: %v", err)))
		return 1
	}

	if *strict {
		if err := schema.Validate(data); err != nil {
			for _, line := range schema.Describe(err) {
				fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, path+": "+line))
			}
			return 1
		}
	}

	cfg, err := hookcfg.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	if err := cfg.Validate(); err != nil {
		// errors.Join separates individual failures with newlines.
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, path+": "+line))
		}
		return 1
	}

	if !*quiet {
		fmt.Println(paint(settings, shared.SuccessStyle, path+": ok"))
	}
	return 0
}
