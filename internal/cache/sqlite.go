package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// SQLite is the on-disk Gateway implementation.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path is required")
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply schema: %w", err)
	}

	var versionStr string
	err = tx.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&versionStr)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := tx.ExecContext(ctx, "INSERT INTO metadata(key, value) VALUES('schema_version', ?)", strconv.Itoa(schemaVersion)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert schema version: %w", err)
		}
		return tx.Commit()
	}
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("read schema version: %w", err)
	}

	version, err := strconv.Atoi(versionStr)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("parse schema version: %w", err)
	}
	if version > schemaVersion {
		_ = tx.Rollback()
		return fmt.Errorf("cache schema version %d is newer than supported %d", version, schemaVersion)
	}

	return tx.Commit()
}

func (s *SQLite) Get(ctx context.Context, handle string, year int) (*Entry, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("cache is not initialized")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT handle, year, data, created_at, updated_at, expires_at
		FROM recaps
		WHERE handle = ? AND year = ?
	`, handle, year)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *SQLite) Put(ctx context.Context, handle string, year int, data json.RawMessage, expiresAt time.Time) error {
	if s == nil || s.db == nil {
		return errors.New("cache is not initialized")
	}
	if strings.TrimSpace(handle) == "" {
		return errors.New("handle is required")
	}
	if len(data) == 0 {
		return errors.New("data is required")
	}

	now := formatTime(time.Now())
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recaps (handle, year, data, created_at, updated_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(handle, year) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at,
			expires_at = excluded.expires_at
	`, handle, year, string(data), now, now, formatTime(expiresAt))
	if err != nil {
		return fmt.Errorf("upsert recap: %w", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, handle string, year int) error {
	if s == nil || s.db == nil {
		return errors.New("cache is not initialized")
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recaps WHERE handle = ? AND year = ?", handle, year); err != nil {
		return fmt.Errorf("delete recap: %w", err)
	}
	return nil
}

func (s *SQLite) Entries(ctx context.Context) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("cache is not initialized")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT handle, year, data, created_at, updated_at, expires_at
		FROM recaps
		ORDER BY handle, year
	`)
	if err != nil {
		return nil, fmt.Errorf("list recaps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recaps: %w", err)
	}
	return entries, nil
}

func (s *SQLite) Clear(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("cache is not initialized")
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM recaps")
	if err != nil {
		return 0, fmt.Errorf("clear recaps: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(scanner rowScanner) (*Entry, error) {
	var (
		e                               Entry
		data                            string
		createdAt, updatedAt, expiresAt string
	)
	if err := scanner.Scan(&e.Handle, &e.Year, &data, &createdAt, &updatedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan recap: %w", err)
	}

	e.Data = json.RawMessage(data)

	var err error
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	if e.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}
	return &e, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}
