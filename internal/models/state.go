// Package models provides data model definitions for the NoteKeep core.
package models

// Preferences holds user settings persisted alongside the collections.
type Preferences struct {
	Theme                  string `json:"theme,omitempty"`
	ImproveAPIKeyEncrypted string `json:"improve_api_key_encrypted,omitempty"`
	SyncDocumentID         string `json:"sync_document_id,omitempty"`
	SyncClientID           string `json:"sync_client_id,omitempty"`
	LastSync               int64  `json:"last_sync,omitempty"` // Unix milliseconds
}

// State is the complete persisted application state. It must round-trip
// losslessly through the persistence gateway.
type State struct {
	Notes       []Note         `json:"notes"`
	Todos       []Todo         `json:"todos"`
	Tags        []string       `json:"tags"`
	History     []HistoryEntry `json:"history"`
	PinnedNotes []Note         `json:"pinned_notes"`
	Trash       []TrashEntry   `json:"trash"`
	Preferences Preferences    `json:"preferences"`
}

// NewState returns an empty state with non-nil collections.
func NewState() *State {
	return &State{
		Notes:       []Note{},
		Todos:       []Todo{},
		Tags:        []string{},
		History:     []HistoryEntry{},
		PinnedNotes: []Note{},
		Trash:       []TrashEntry{},
	}
}
