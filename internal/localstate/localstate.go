// Package localstate is the durable key-value store that survives a
// restart: whole-value JSON strings keyed by name, backed by SQLite.
// An absent key is "empty", never an error.
package localstate

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Keys persisted by the session manager and nest store.
const (
	KeySessionUser = "turtle_track_user"
	KeyVolunteers  = "turtle_track_volunteers"
	KeyNests       = "turtle_track_nests"
)

// Store is a whole-value key→JSON store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the state database at path and ensures the
// schema exists. An empty path derives the default location under the
// user home directory.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DBPath()
		if err != nil {
			return nil, err
		}
	}
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS LocalState (
        Key TEXT PRIMARY KEY,
        Value TEXT NOT NULL
    );`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the stored value and whether the key was present.
func (s *Store) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT Value FROM LocalState WHERE Key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Put replaces the whole value for key.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO LocalState (Key, Value) VALUES (?, ?)
        ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`, key, value)
	return err
}

// Delete removes key; deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM LocalState WHERE Key = ?`, key)
	return err
}
