// Package main implements the lilhook command: a toolkit for hook-runner
// configuration documents.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lilhook/lilhook/internal/config"
	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/output"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		os.Exit(runValidate(settings, os.Args[2:]))
	case "fmt":
		os.Exit(runFmt(settings, os.Args[2:]))
	case "hooks":
		os.Exit(runHooks(settings, os.Args[2:]))
	case "sample":
		os.Exit(runSample())
	case "cache":
		os.Exit(runCache(settings, os.Args[2:]))
	case "version":
		fmt.Println("lilhook v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `lilhook - hook configuration toolkit

Usage:
  lilhook <command> [arguments]

Commands:
  validate      Parse and validate a hook configuration document
  fmt           Rewrite a document in canonical form
  hooks         List the providers and hook entries a document enables
  sample        Print a starter document
  cache         Manage the provider index (list, get, add, rm, prune, reset)
  version       Print version information
  help          Show this help message

Examples:
  lilhook validate
  lilhook validate --strict ci/%[1]s
  lilhook fmt -w
  lilhook hooks
  lilhook cache list
`, hookcfg.ConfigFileName)
}

// documentPath resolves the positional document argument, falling back to
// the configured default.
func documentPath(settings *config.Settings, arg string) string {
	if arg != "" {
		return arg
	}
	return settings.Document
}

// paint applies a style unless color output is disabled.
func paint(settings *config.Settings, style lipgloss.Style, msg string) string {
	if !settings.Color {
		return msg
	}
	return style.Render(msg)
}

func renderer(settings *config.Settings) *output.ListRenderer {
	if !settings.Color {
		return output.NewPlainListRenderer()
	}
	return output.NewListRenderer()
}
