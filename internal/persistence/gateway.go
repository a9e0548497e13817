// Package persistence defines the storage contract for application state.
//
// The core depends on storage only through this interface; the store never
// sees file paths or database handles.
package persistence

import "github.com/poyhsiao/notekeep/internal/models"

// Gateway loads and saves a single serialized blob of application state.
//
// Load returns (nil, nil) when no state has been saved yet. Save must be
// lossless: Save(s) followed by Load() yields a state equal to s.
type Gateway interface {
	Load() (*models.State, error)
	Save(state *models.State) error
}
