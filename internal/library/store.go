// Package library persists the educational content collection that the
// list, show, and remove commands operate on.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	apperrors "github.com/studybook-cli/studybook/pkg/errors"
)

// Store manages content library persistence. All accessors take a read
// or write lock so a Store can be shared across goroutines.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	items   []ContentItem
}

// NewStore creates a Store backed by the file at path and loads it from
// disk. A missing file yields an empty library.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		s.items = []ContentItem{}
	}

	return s, nil
}

// Load reads the library from disk, replacing in-memory state.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return apperrors.NewParseError(s.path, 0, err)
	}

	s.version = file.Version
	s.items = file.Items

	return nil
}

// Save writes the library to disk atomically via a temp file and rename.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := libraryFile{
		Version: s.version,
		Items:   s.items,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all content items sorted by ID. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) List() []ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ContentItem, len(s.items))
	copy(result, s.items)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Get retrieves a content item by ID.
func (s *Store) Get(id string) (ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}

	return ContentItem{}, apperrors.NewNotFoundError("content item", id)
}

// Add appends a new content item. Duplicate IDs are rejected.
func (s *Store) Add(item ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return apperrors.NewValidationError("id", fmt.Sprintf("content item %q already exists", item.ID), nil)
		}
	}

	s.items = append(s.items, item)
	return nil
}

// Remove deletes a content item by ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	return apperrors.NewNotFoundError("content item", id)
}

// Count returns the number of stored items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
