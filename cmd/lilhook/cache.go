package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lilhook/lilhook/internal/config"
	"github.com/lilhook/lilhook/internal/shared"
	"github.com/lilhook/lilhook/internal/store"
)

// runCache manages the provider index database.
func runCache(settings *config.Settings, args []string) int {
	if len(args) < 1 {
		printCacheUsage()
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(settings.CacheDB), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing cache directory: %v\n", err)
		return 1
	}

	s, err := store.Open(settings.CacheDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening provider index: %v\n", err)
		return 1
	}
	defer func() {
		_ = s.Close()
	}()

	ctx := context.Background()

	switch args[0] {
	case "list":
		return cacheList(ctx, settings, s)
	case "get":
		return cacheGet(ctx, settings, s, args[1:])
	case "add":
		return cacheAdd(ctx, settings, s, args[1:])
	case "rm":
		return cacheRemove(ctx, settings, s, args[1:])
	case "prune":
		return cachePrune(ctx, settings, s, args[1:])
	case "reset":
		return cacheReset(ctx, settings, s)
	default:
		fmt.Fprintf(os.Stderr, "Unknown cache command: %s\n", args[0])
		printCacheUsage()
		return 1
	}
}

func printCacheUsage() {
	fmt.Fprint(os.Stderr, `Usage:
  lilhook cache list
  lilhook cache get <source> <rev>
  lilhook cache add <source> <rev> <path>
  lilhook cache rm <source> <rev>
  lilhook cache prune [-days N]
  lilhook cache reset
`)
}

func cacheList(ctx context.Context, settings *config.Settings, s *store.Store) int {
	providers, err := s.List(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}
	fmt.Print(renderer(settings).RenderIndex(providers))
	return 0
}

func cacheGet(ctx context.Context, settings *config.Settings, s *store.Store, args []string) int {
	if len(args) != 2 {
		printCacheUsage()
		return 1
	}

	p, err := s.Get(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(os.Stderr, paint(settings, shared.WarningStyle,
				fmt.Sprintf("%s@%s is not indexed", args[0], args[1])))
			return 1
		}
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	fmt.Println(p.Path)
	if err := s.Touch(ctx, p.Source, p.Rev); err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.WarningStyle,
			fmt.Sprintf("Warning: could not update last-used time: %v", err)))
	}
	return 0
}

func cacheAdd(ctx context.Context, settings *config.Settings, s *store.Store, args []string) int {
	if len(args) != 3 {
		printCacheUsage()
		return 1
	}

	p := store.Provider{Source: args[0], Rev: args[1], Path: args[2]}
	if err := s.Add(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			fmt.Fprintln(os.Stderr, paint(settings, shared.WarningStyle,
				fmt.Sprintf("%s@%s is already indexed", p.Source, p.Rev)))
			return 1
		}
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}
	return 0
}

func cacheRemove(ctx context.Context, settings *config.Settings, s *store.Store, args []string) int {
	if len(args) != 2 {
		printCacheUsage()
		return 1
	}

	if err := s.Delete(ctx, args[0], args[1]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(os.Stderr, paint(settings, shared.WarningStyle,
				fmt.Sprintf("%s@%s is not indexed", args[0], args[1])))
			return 1
		}
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}
	return 0
}

func cachePrune(ctx context.Context, settings *config.Settings, s *store.Store, args []string) int {
	fs := flag.NewFlagSet("cache prune", flag.ExitOnError)
	days := fs.Int("days", 90, "drop records unused for this many days")
	_ = fs.Parse(args)

	cutoff := time.Now().AddDate(0, 0, -*days)
	dropped, err := s.Prune(ctx, cutoff)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}

	fmt.Println(paint(settings, shared.SuccessStyle,
		fmt.Sprintf("Pruned %d record(s)", dropped)))
	return 0
}

func cacheReset(ctx context.Context, settings *config.Settings, s *store.Store) int {
	if err := s.Reset(ctx); err != nil {
		fmt.Fprintln(os.Stderr, paint(settings, shared.ErrorStyle, err.Error()))
		return 1
	}
	fmt.Println(paint(settings, shared.SuccessStyle, "Provider index reset"))
	return 0
}
