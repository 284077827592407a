package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRelPath is the state file location relative to the project root.
const DefaultRelPath = ".omc/state/dhh-review-state.json"

// Store persists review state across guard invocations. Implementations
// must return (nil, nil) from Load when no state exists.
type Store interface {
	Load() (*ReviewState, error)
	Save(s *ReviewState) error
	Delete() error
}

// FileStore persists review state as a JSON file. Writes create the parent
// directory as needed. There is no locking; concurrent writers are
// last-writer-wins.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the default path under root.
func NewFileStore(root string) *FileStore {
	return &FileStore{path: filepath.Join(root, filepath.FromSlash(DefaultRelPath))}
}

// NewFileStoreAt creates a store at an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the state file. Returns (nil, nil) if it does not exist.
func (fs *FileStore) Load() (*ReviewState, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil // No state exists
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var s ReviewState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}

	return &s, nil
}

// Save writes the state file, creating the state directory if absent.
func (fs *FileStore) Save(s *ReviewState) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("ensure state dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	return nil
}

// Delete removes the state file. Missing files are not an error.
func (fs *FileStore) Delete() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state: %w", err)
	}
	return nil
}
