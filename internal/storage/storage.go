package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adires/htma-shows/internal/show"
)

// ScopeAll is the snapshot scope covering every category in one file.
const ScopeAll = "all"

// Storage handles persistence of show snapshots.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if needed.
// A leading ~/ is expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// snapshotPath returns the file path for a snapshot scope (a category name
// or ScopeAll).
func (s *Storage) snapshotPath(scope string) string {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" || scope == ScopeAll {
		return filepath.Join(s.dataDir, "snapshot.json")
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", scope))
}

// LoadSnapshot loads a snapshot from disk. A missing snapshot is not an
// error: an empty snapshot is returned, so every show counts as new.
func (s *Storage) LoadSnapshot(scope string) (*show.Snapshot, error) {
	path := s.snapshotPath(scope)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return show.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot show.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Shows == nil {
		snapshot.Shows = make(map[string]show.Show)
	}

	return &snapshot, nil
}

// SaveSnapshot writes a snapshot to disk, stamping it with the current time.
func (s *Storage) SaveSnapshot(snapshot *show.Snapshot, scope string) error {
	path := s.snapshotPath(scope)

	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// SaveShows creates and saves a snapshot from a list of shows.
func (s *Storage) SaveShows(shows []show.Show, scope string) error {
	snapshot := show.CreateSnapshot(shows, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, scope)
}
