// Package history records played tracks in a small sqlite database.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "tempo"
	dbFileName = "tempo.db"
)

// Entry is one recorded play.
type Entry struct {
	ID         int64
	Identifier string
	Title      string
	Duration   float64
	Tempo      float64
	PlayedAt   time.Time
}

// Store persists play history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, appName, dbFileName)
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Record inserts a play into the history.
func (s *Store) Record(e Entry) error {
	playedAt := e.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO plays (identifier, title, duration_seconds, tempo, played_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Identifier, e.Title, e.Duration, e.Tempo, playedAt.Unix())
	return err
}

// Recent returns the most recent plays, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, identifier, title, duration_seconds, tempo, played_at
		FROM plays
		ORDER BY played_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var playedAt int64
		if err := rows.Scan(&e.ID, &e.Identifier, &e.Title, &e.Duration, &e.Tempo, &playedAt); err != nil {
			return nil, err
		}
		e.PlayedAt = time.Unix(playedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
