// Package file provides a JSON-file persistence gateway.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poyhsiao/notekeep/internal/models"
)

// Gateway persists state as a JSON file, written atomically.
type Gateway struct {
	path string
}

// New creates a file gateway backed by the given path.
// The parent directory is created on first save.
func New(path string) *Gateway {
	return &Gateway{path: path}
}

// Load reads the state file. Returns (nil, nil) if the file does not exist.
func (g *Gateway) Load() (*models.State, error) {
	data, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state file: %w", err)
	}
	return &state, nil
}

// Save writes the state file atomically via a temp file and rename.
func (g *Gateway) Save(state *models.State) error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
