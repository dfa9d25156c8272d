// Package storage persists small viewer state between sessions
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PositionStore handles JSON persistence of per-file reading positions:
// the content scroll offset a file was last viewed at, keyed by its
// absolute path.
type PositionStore struct {
	FilePath string
}

// positionsFile is the on-disk layout
type positionsFile struct {
	Positions map[string]float64 `json:"positions"`
}

// NewPositionStore creates a store backed by the given file path
func NewPositionStore(filePath string) *PositionStore {
	return &PositionStore{
		FilePath: filePath,
	}
}

// DefaultPositionStore creates a store at the standard config location
func DefaultPositionStore() (*PositionStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewPositionStore(filepath.Join(home, ".config", "tui-docview", "positions.json")), nil
}

// Load reads all stored reading positions. A missing file is an empty map.
func (s *PositionStore) Load() (map[string]float64, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]float64), nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var pf positionsFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if pf.Positions == nil {
		pf.Positions = make(map[string]float64)
	}

	return pf.Positions, nil
}

// Save writes all reading positions to disk
func (s *PositionStore) Save(positions map[string]float64) error {
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(positionsFile{Positions: positions}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Get returns the stored offset for one file path
func (s *PositionStore) Get(path string) (float64, error) {
	positions, err := s.Load()
	if err != nil {
		return 0, err
	}
	return positions[path], nil
}

// Set stores the offset for one file path
func (s *PositionStore) Set(path string, offset float64) error {
	positions, err := s.Load()
	if err != nil {
		return err
	}
	positions[path] = offset
	return s.Save(positions)
}
