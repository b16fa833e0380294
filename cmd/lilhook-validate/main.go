// Package main implements lilhook-validate, a single-purpose document
// validator for git-hook and CI wiring. It reads a path argument (or stdin
// when the argument is "-" or absent) and exits non-zero on any failure,
// printing one diagnostic per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/schema"
)

func main() {
	strict := flag.Bool("strict", false, "also run the JSON Schema pass")
	flag.Parse()

	name, data, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	os.Exit(validate(name, data, *strict))
}

func readInput(arg string) (string, []byte, error) {
	if arg == "" || arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", nil, err
	}
	return arg, data, nil
}

func validate(name string, data []byte, strict bool) int {
	if strict {
		if err := schema.Validate(data); err != nil {
			for _, line := range schema.Describe(err) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", name, line)
			}
			return 1
		}
	}

	cfg, err := hookcfg.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, line)
		}
		return 1
	}

	return 0
}
