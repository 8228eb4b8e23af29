package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pixelgrid/overlaykit/pkg/errors"
)

// FileStore is a file-based profile store for CLI applications.
// Profiles are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based profile store.
// If baseDir is empty, defaults to ~/.config/overlaykit/profiles/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "overlaykit", "profiles")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) profilePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a profile by id.
func (s *FileStore) Get(ctx context.Context, id string) (*Profile, error) {
	if err := errors.ValidateProfileID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.profilePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return &p, nil
}

// Put stores a profile, overwriting any existing one with the same id.
func (s *FileStore) Put(ctx context.Context, p *Profile) error {
	if err := errors.ValidateProfileID(p.ID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.profilePath(p.ID), data, 0600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}
	return nil
}

// Delete removes a profile.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateProfileID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.profilePath(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// List returns all stored profiles.
func (s *FileStore) List(ctx context.Context) ([]*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var profiles []*Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue // skip unreadable entries
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			continue // skip corrupt entries
		}
		profiles = append(profiles, &p)
	}
	return profiles, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close(ctx context.Context) error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
