package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thornlake/spotline/auth"
)

// FileStore keeps the token record embedded in a JSON document on disk.
// The document may carry arbitrary other keys (host application settings,
// earlier credentials); Save patches only the four token fields and writes
// the whole document back.
type FileStore struct {
	path string
}

var _ auth.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore for the JSON document at path. The file
// does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document location.
func (s *FileStore) Path() string { return s.path }

// Load reads the token record out of the document. A missing file,
// unreadable content, or malformed JSON all yield nil.
func (s *FileStore) Load() *auth.Token {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var rec auth.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}

	tok := auth.FromRecord(rec)
	if !tok.Valid() {
		return nil
	}
	return tok
}

// Save re-reads the document, patches the four token keys, and writes the
// whole document back, preserving any other content.
func (s *FileStore) Save(t *auth.Token) error {
	doc := map[string]json.RawMessage{}
	if data, err := os.ReadFile(s.path); err == nil {
		// A corrupt document is replaced rather than preserved.
		if err := json.Unmarshal(data, &doc); err != nil {
			doc = map[string]json.RawMessage{}
		}
	}

	rec := t.Record()
	patch := map[string]any{
		"access_token":  rec.AccessToken,
		"expires_in":    rec.ExpiresIn,
		"refresh_token": rec.RefreshToken,
		"token_type":    rec.TokenType,
	}
	for key, value := range patch {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode token field %s: %w", key, err)
		}
		doc[key] = raw
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token document: %w", err)
	}

	return nil
}
