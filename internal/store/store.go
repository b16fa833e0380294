// Package store keeps a SQLite index of fetched hook providers: which
// (source, rev) pairs have been materialized and where. It is bookkeeping
// only; fetching providers is someone else's job.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrNotFound is returned when no record matches a (source, rev) pair.
var ErrNotFound = errors.New("provider not found")

// ErrAlreadyExists is returned when a (source, rev) pair is indexed twice.
var ErrAlreadyExists = errors.New("provider already indexed")

// Provider is one index record.
type Provider struct {
	Source   string
	Rev      string
	Path     string
	Created  time.Time
	LastUsed time.Time
}

// Store persists the provider index in SQLite.
type Store struct {
	db *sql.DB
}

const schemaStmt = `CREATE TABLE IF NOT EXISTS providers (
	source       TEXT NOT NULL,
	rev          TEXT NOT NULL,
	path         TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	last_used_at INTEGER NOT NULL,
	PRIMARY KEY (source, rev)
)`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping index db: %w", err)
	}
	if _, err := db.Exec(schemaStmt); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init index schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add records one provider. The (source, rev) pair must not already exist.
func (s *Store) Add(ctx context.Context, p Provider) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	source := strings.TrimSpace(p.Source)
	rev := strings.TrimSpace(p.Rev)
	if source == "" {
		return fmt.Errorf("source is required")
	}
	if rev == "" {
		return fmt.Errorf("rev is required")
	}

	now := time.Now().UTC()
	created := p.Created
	if created.IsZero() {
		created = now
	}
	lastUsed := p.LastUsed
	if lastUsed.IsZero() {
		lastUsed = created
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO providers (source, rev, path, created_at, last_used_at)
		 VALUES (?, ?, ?, ?, ?)`,
		source,
		rev,
		p.Path,
		toMillis(created),
		toMillis(lastUsed),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("add provider: %w", err)
	}
	return nil
}

// Get returns the record for one (source, rev) pair.
func (s *Store) Get(ctx context.Context, source, rev string) (Provider, error) {
	if err := ctx.Err(); err != nil {
		return Provider{}, err
	}

	row := s.db.QueryRowContext(
		ctx,
		`SELECT source, rev, path, created_at, last_used_at
		   FROM providers
		  WHERE source = ? AND rev = ?`,
		source,
		rev,
	)

	var p Provider
	var created, lastUsed int64
	if err := row.Scan(&p.Source, &p.Rev, &p.Path, &created, &lastUsed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, fmt.Errorf("get provider: %w", err)
	}
	p.Created = fromMillis(created)
	p.LastUsed = fromMillis(lastUsed)
	return p, nil
}

// Touch bumps the last-used timestamp for one record.
func (s *Store) Touch(ctx context.Context, source, rev string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE providers SET last_used_at = ? WHERE source = ? AND rev = ?`,
		toMillis(time.Now().UTC()),
		source,
		rev,
	)
	if err != nil {
		return fmt.Errorf("touch provider: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch provider: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every record, ordered by source then rev.
func (s *Store) List(ctx context.Context) ([]Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT source, rev, path, created_at, last_used_at
		   FROM providers
		  ORDER BY source ASC, rev ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var out []Provider
	for rows.Next() {
		var p Provider
		var created, lastUsed int64
		if err := rows.Scan(&p.Source, &p.Rev, &p.Path, &created, &lastUsed); err != nil {
			return nil, fmt.Errorf("list providers: %w", err)
		}
		p.Created = fromMillis(created)
		p.LastUsed = fromMillis(lastUsed)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return out, nil
}

// Delete removes one record.
func (s *Store) Delete(ctx context.Context, source, rev string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM providers WHERE source = ? AND rev = ?`,
		source,
		rev,
	)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Prune removes every record not used since the cutoff and reports how many
// were dropped.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM providers WHERE last_used_at < ?`,
		toMillis(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("prune providers: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune providers: %w", err)
	}
	return affected, nil
}

// Reset drops the whole index and recreates the empty schema.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS providers`); err != nil {
		return fmt.Errorf("reset index: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schemaStmt); err != nil {
		return fmt.Errorf("reset index: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
