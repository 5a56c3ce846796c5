package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded filename resolution.
type Entry struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	ConfigPath   string    `json:"config_path,omitempty"`
	ResolvedPath string    `json:"resolved_path"`
	Hostname     string    `json:"hostname,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store manages resolution history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the default history database location, honoring
// XDG_STATE_HOME.
func DefaultPath() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "labrec", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "labrec-history.db"
	}
	return filepath.Join(home, ".local", "state", "labrec", "history.db")
}

// Open initializes or connects to the history database at path. An empty
// path selects DefaultPath.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one resolution entry and returns it with its assigned id.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	createdAt = createdAt.UTC()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO resolutions (session_id, config_path, resolved_path, hostname, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.ConfigPath,
		entry.ResolvedPath,
		entry.Hostname,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert resolution: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return &entry, nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, session_id, config_path, resolved_path, hostname, created_at
              FROM resolutions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query resolutions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.ConfigPath, &entry.ResolvedPath, &entry.Hostname, &createdAt); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resolutions: %w", err)
	}
	return entries, nil
}

// Clear removes every entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM resolutions")
	if err != nil {
		return 0, fmt.Errorf("clear resolutions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}
