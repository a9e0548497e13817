// Package handlers provides the REST API handlers for the notesd server.
package handlers

import (
	"encoding/json"
	"net/http"

	apperr "github.com/poyhsiao/notekeep/internal/errors"
	"github.com/poyhsiao/notekeep/internal/assistant"
	"github.com/poyhsiao/notekeep/internal/export"
	"github.com/poyhsiao/notekeep/internal/improve"
	"github.com/poyhsiao/notekeep/internal/search"
	"github.com/poyhsiao/notekeep/internal/store"
	syncpkg "github.com/poyhsiao/notekeep/internal/sync"
)

// Notifier broadcasts events to connected UI clients.
type Notifier interface {
	Broadcast(messageType string, data map[string]interface{})
}

// noopNotifier is used when no hub is attached.
type noopNotifier struct{}

func (noopNotifier) Broadcast(string, map[string]interface{}) {}

// Handler holds the core components the API exposes.
type Handler struct {
	Store     *store.Store
	Search    *search.Engine
	Assistant *assistant.Interpreter
	Improver  *improve.Improver
	Exporter  *export.Service
	Sync      *syncpkg.Engine
	Events    Notifier
}

// New creates a Handler. sync may be nil when sync is disabled.
func New(s *store.Store, se *search.Engine, ai *assistant.Interpreter,
	im *improve.Improver, ex *export.Service, sy *syncpkg.Engine, events Notifier) *Handler {
	if events == nil {
		events = noopNotifier{}
	}
	return &Handler{
		Store:     s,
		Search:    se,
		Assistant: ai,
		Improver:  im,
		Exporter:  ex,
		Sync:      sy,
		Events:    events,
	}
}

// Register wires all routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/notes", h.Notes)
	mux.HandleFunc("/api/notes/delete", h.DeleteNote)
	mux.HandleFunc("/api/notes/pin", h.PinNote)
	mux.HandleFunc("/api/notes/unpin", h.UnpinNote)
	mux.HandleFunc("/api/notes/pinned", h.PinnedNotes)
	mux.HandleFunc("/api/notes/history", h.History)
	mux.HandleFunc("/api/tags", h.Tags)
	mux.HandleFunc("/api/todos", h.Todos)
	mux.HandleFunc("/api/todos/toggle", h.ToggleTodo)
	mux.HandleFunc("/api/todos/delete", h.DeleteTodo)
	mux.HandleFunc("/api/trash", h.Trash)
	mux.HandleFunc("/api/trash/restore", h.RestoreNote)
	mux.HandleFunc("/api/trash/purge", h.PurgeTrash)
	mux.HandleFunc("/api/trash/delete", h.PermanentlyDelete)
	mux.HandleFunc("/api/trash/empty", h.EmptyTrash)
	mux.HandleFunc("/api/search", h.SearchNotes)
	mux.HandleFunc("/api/assistant", h.AssistantMessage)
	mux.HandleFunc("/api/rewrite", h.Rewrite)
	mux.HandleFunc("/api/sync/push", h.SyncPush)
	mux.HandleFunc("/api/sync/status", h.SyncStatus)
	mux.HandleFunc("/api/export/json", h.ExportJSON)
	mux.HandleFunc("/api/export/markdown", h.ExportMarkdown)
	mux.HandleFunc("/api/preview", h.Preview)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps application errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperr.ErrInternal

	if appErr, ok := err.(*apperr.AppError); ok {
		code = appErr.Code
		switch {
		case appErr.Code == apperr.ErrValidation:
			status = http.StatusBadRequest
		case apperr.IsNotFound(appErr):
			status = http.StatusNotFound
		case appErr.Code == apperr.ErrPersistence:
			// The mutation stuck in memory; surface the storage failure.
			status = http.StatusInternalServerError
		}
	}

	writeJSON(w, status, map[string]interface{}{
		"error": err.Error(),
		"code":  string(code),
	})
}
