package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thornlake/spotline/auth"
	_ "github.com/mattn/go-sqlite3"
)

// TokenKey is the fixed preference slot holding the token record. Only one
// token exists per store; last write wins.
const TokenKey = "spotline.token"

const prefSchema = `CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PrefStore keeps the token record as a single opaque key-value entry in a
// SQLite preferences table.
type PrefStore struct {
	db *sql.DB
}

var _ auth.Store = (*PrefStore)(nil)

// OpenDB opens a SQLite database at the specified path. The path can be
// ":memory:" for an in-memory database.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewPrefStore creates a PrefStore on the given database, creating the
// preferences table when it does not exist.
func NewPrefStore(db *sql.DB) (*PrefStore, error) {
	if _, err := db.Exec(prefSchema); err != nil {
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}
	return &PrefStore{db: db}, nil
}

// Load reads the token record from the preference slot. An absent row or an
// unparseable value yields nil.
func (s *PrefStore) Load() *auth.Token {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", TokenKey).Scan(&value)
	if err != nil {
		return nil
	}

	var rec auth.Record
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return nil
	}

	tok := auth.FromRecord(rec)
	if !tok.Valid() {
		return nil
	}
	return tok
}

// Save upserts the token record into the preference slot.
func (s *PrefStore) Save(t *auth.Token) error {
	data, err := json.Marshal(t.Record())
	if err != nil {
		return fmt.Errorf("failed to encode token record: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		TokenKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write preference: %w", err)
	}

	return nil
}
