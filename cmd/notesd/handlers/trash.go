package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/poyhsiao/notekeep/internal/models"
)

// trashView adds the display-only days-remaining field to a trash entry.
type trashView struct {
	models.TrashEntry
	DaysRemaining int `json:"days_remaining"`
}

// Trash handles GET /api/trash.
func (h *Handler) Trash(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	entries := h.Store.Trash()
	views := make([]trashView, 0, len(entries))
	for _, e := range entries {
		views = append(views, trashView{
			TrashEntry:    e,
			DaysRemaining: e.DaysRemaining(now),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trash": views,
	})
}

// RestoreNote handles POST /api/trash/restore.
func (h *Handler) RestoreNote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		ID models.ID `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.Store.Restore(request.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Events.Broadcast("note.restored", map[string]interface{}{
		"id": note.ID,
	})
	writeJSON(w, http.StatusOK, note)
}

// PurgeTrash handles POST /api/trash/purge, removing expired entries.
func (h *Handler) PurgeTrash(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	removed := h.Store.PurgeExpired(time.Now())
	if removed > 0 {
		h.Events.Broadcast("trash.purged", map[string]interface{}{
			"removed": removed,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"removed": removed})
}

// PermanentlyDelete handles POST /api/trash/delete. An absent id is
// treated as already satisfied.
func (h *Handler) PermanentlyDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		ID models.ID `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Store.PermanentlyDelete(request.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": request.ID})
}

// EmptyTrash handles POST /api/trash/empty. The confirmation travels in
// the request; without it nothing is removed.
func (h *Handler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.Store.EmptyTrash(request.Confirmed)
	if err != nil {
		writeError(w, err)
		return
	}

	if count > 0 {
		h.Events.Broadcast("trash.emptied", map[string]interface{}{
			"removed": count,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"removed": count})
}
