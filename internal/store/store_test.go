package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Expected error for blank path")
	}
}

func TestAddAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := Provider{
		Source: "https://github.com/pycqa/isort",
		Rev:    "5.13.2",
		Path:   "/home/u/.cache/lilhook/isort-5.13.2",
	}
	if err := s.Add(ctx, in); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.Get(ctx, in.Source, in.Rev)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Source != in.Source || got.Rev != in.Rev || got.Path != in.Path {
		t.Errorf("Unexpected record: %+v", got)
	}
	if got.Created.IsZero() || got.LastUsed.IsZero() {
		t.Error("Expected timestamps to be populated")
	}
}

func TestAddValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, Provider{Rev: "v1"}); err == nil {
		t.Error("Expected error for missing source")
	}
	if err := s.Add(ctx, Provider{Source: "X"}); err == nil {
		t.Error("Expected error for missing rev")
	}
}

func TestAddDuplicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := Provider{Source: "X", Rev: "v1", Path: "/tmp/x"}
	if err := s.Add(ctx, p); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := s.Add(ctx, p)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	// Same source at a different rev is a different provider.
	if err := s.Add(ctx, Provider{Source: "X", Rev: "v2", Path: "/tmp/x2"}); err != nil {
		t.Errorf("Different rev should be accepted, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "X", "v1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestTouch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Provider{Source: "X", Rev: "v1", Path: "/tmp/x", Created: created, LastUsed: created}
	if err := s.Add(ctx, p); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Touch(ctx, "X", "v1"); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	got, err := s.Get(ctx, "X", "v1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.LastUsed.After(created) {
		t.Errorf("Expected last-used to advance past %v, got %v", created, got.LastUsed)
	}

	if err := s.Touch(ctx, "X", "v9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, p := range []Provider{
		{Source: "b", Rev: "v2", Path: "/b2"},
		{Source: "a", Rev: "v1", Path: "/a1"},
		{Source: "b", Rev: "v1", Path: "/b1"},
	} {
		if err := s.Add(ctx, p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"a@v1", "b@v1", "b@v2"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i, p := range got {
		key := p.Source + "@" + p.Rev
		if key != want[i] {
			t.Errorf("Record %d: expected %s, got %s", i, want[i], key)
		}
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, Provider{Source: "X", Rev: "v1", Path: "/x"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Delete(ctx, "X", "v1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "X", "v1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	old := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := s.Add(ctx, Provider{Source: "old", Rev: "v1", Path: "/o", Created: old, LastUsed: old}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(ctx, Provider{Source: "new", Rev: "v1", Path: "/n"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	dropped, err := s.Prune(ctx, old.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if dropped != 1 {
		t.Errorf("Expected 1 pruned record, got %d", dropped)
	}

	if _, err := s.Get(ctx, "old", "v1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected pruned record to be gone, got %v", err)
	}
	if _, err := s.Get(ctx, "new", "v1"); err != nil {
		t.Errorf("Expected recent record to survive, got %v", err)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, Provider{Source: "X", Rev: "v1", Path: "/x"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List after reset failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty index after reset, got %d records", len(got))
	}

	// The index must still accept new records.
	if err := s.Add(ctx, Provider{Source: "Y", Rev: "v1", Path: "/y"}); err != nil {
		t.Errorf("Add after reset failed: %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Add(ctx, Provider{Source: "X", Rev: "v1"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := s.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
