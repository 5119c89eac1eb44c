// Package store keeps the in-memory work log list and its JSON file on
// disk in sync. The file is the canonical on-device dataset; every save
// rewrites it whole.
package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// template is the bundled dataset copied into place verbatim on first run.
//
//go:embed template.json
var template []byte

// Store is the single source of truth for the session. A mutex serializes
// logical operations; the core assumes one operation at a time.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []WorkLog
}

// Open loads (or bootstraps) the store file at path. Load failures degrade
// to an empty dataset with a logged diagnostic; the app stays usable with
// zero records. Only an unusable parent directory is a hard error.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{path: path}
	s.load()
	return s, nil
}

func (s *Store) load() {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, template, 0o644); err != nil {
			slog.Warn("seeding work log store from template", "path", s.path, "err", err)
			return
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		slog.Warn("reading work log store", "path", s.path, "err", err)
		return
	}

	var entries []WorkLog
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("parsing work log store", "path", s.path, "err", err)
		return
	}
	s.entries = entries
}

// Save rewrites the whole store file from the current entries. A failed
// save is logged and reported but leaves the in-memory state untouched:
// it stays authoritative for the rest of the session.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		slog.Warn("encoding work log store", "path", s.path, "err", err)
		return fmt.Errorf("encode store: %w", err)
	}

	// Write-then-rename so a crashed save never leaves a truncated file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		slog.Warn("writing work log store", "path", s.path, "err", err)
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		slog.Warn("replacing work log store", "path", s.path, "err", err)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// DefaultDataPath returns ~/.config/worklog/data.json.
func DefaultDataPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "worklog", "data.json"), nil
}
