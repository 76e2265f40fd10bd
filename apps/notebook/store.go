// File: store.go
// Title: Notebook SQLite Store
// Description: Persists notebook notes in SQLite: schema creation,
//              insertion, listing, text search and removal. Notes carry
//              an optional tag and a creation timestamp.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package notebook

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/parley/utils/stringx"
)

// Note is one stored notebook entry.
type Note struct {
	ID        int64
	Text      string
	Tag       string
	CreatedAt time.Time
}

// Store persists notes in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// DefaultPath is the database location when none is configured.
const DefaultPath = "./data/notebook.db"

// OpenStore opens (and if needed creates) the note database at path.
// The special path ":memory:" keeps the notebook in memory only.
func OpenStore(path string) (*Store, error) {
	path = stringx.FirstNonBlank(path, DefaultPath)

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		path += "?_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the notes table.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_notes_tag ON notes(tag);
	CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add inserts a note and returns it with its assigned ID.
func (s *Store) Add(ctx context.Context, text, tag string) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (text, tag, created_at) VALUES (?, ?, ?)
	`, text, tag, now)
	if err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read note id: %w", err)
	}

	return &Note{ID: id, Text: text, Tag: tag, CreatedAt: now}, nil
}

// List returns up to limit notes, newest first. A non-empty tag
// restricts the listing to that tag.
func (s *Store) List(ctx context.Context, tag string, limit int) ([]*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, text, tag, created_at FROM notes`
	args := []any{}
	if tag != "" {
		query += ` WHERE tag = ?`
		args = append(args, tag)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// Find returns the notes whose text contains term, newest first.
func (s *Store) Find(ctx context.Context, term string) ([]*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, tag, created_at FROM notes
		WHERE text LIKE ?
		ORDER BY created_at DESC, id DESC
	`, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// Remove deletes a note by ID. It reports whether a note was removed.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to remove note: %w", err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// Count returns the total number of stored notes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return n, nil
}

// Clear removes every note.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	return nil
}

// Tags returns the distinct non-empty tags in use, sorted.
func (s *Store) Tags(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT tag FROM notes WHERE tag != '' ORDER BY tag
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// scanNotes reads all remaining rows of a notes query.
func scanNotes(rows *sql.Rows) ([]*Note, error) {
	var notes []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Text, &n.Tag, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}
