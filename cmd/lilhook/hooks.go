package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lilhook/lilhook/internal/config"
	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/shared"
)

// runHooks lists the providers and hook entries a document enables.
func runHooks(settings *config.Settings, args []string) int {
	fs := flag.NewFlagSet("hooks", flag.ExitOnError)
	_ = fs.Parse(args)

	path := documentPath(settings, fs.Arg(0))

	cfg, err := hookcfg.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	fmt.Print(renderer(settings).RenderConfig(cfg))
	return 0
}

// runSample prints a starter document.
func runSample() int {
	out, err := hookcfg.Marshal(hookcfg.SampleConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}