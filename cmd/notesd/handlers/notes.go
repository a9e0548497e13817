package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/poyhsiao/notekeep/internal/models"
)

// Notes handles GET /api/notes (list) and POST /api/notes (create).
func (h *Handler) Notes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"notes": h.Store.Notes(),
		})

	case http.MethodPost:
		var request struct {
			Content  string          `json:"content"`
			Tags     []string        `json:"tags"`
			Category models.Category `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		note, err := h.Store.CreateNote(request.Content, request.Tags, request.Category)
		if err != nil {
			writeError(w, err)
			return
		}

		h.Events.Broadcast("note.created", map[string]interface{}{
			"id": note.ID,
		})
		writeJSON(w, http.StatusCreated, note)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// DeleteNote handles POST /api/notes/delete, moving a note to the trash.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
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

	entry, err := h.Store.DeleteNote(request.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Events.Broadcast("note.trashed", map[string]interface{}{
		"id": entry.ID,
	})
	writeJSON(w, http.StatusOK, entry)
}

// PinNote handles POST /api/notes/pin, snapshotting editor content into
// the pinned collection.
func (h *Handler) PinNote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Content  string          `json:"content"`
		Tags     []string        `json:"tags"`
		Category models.Category `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.Store.PinSnapshot(request.Content, request.Tags, request.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Events.Broadcast("note.pinned", map[string]interface{}{
		"id": note.ID,
	})
	writeJSON(w, http.StatusCreated, note)
}

// UnpinNote handles POST /api/notes/unpin.
func (h *Handler) UnpinNote(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Store.Unpin(request.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"unpinned": request.ID})
}

// PinnedNotes handles GET /api/notes/pinned.
func (h *Handler) PinnedNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pinned_notes": h.Store.PinnedNotes(),
	})
}

// History handles GET /api/notes/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": h.Store.History(),
	})
}

// Tags handles GET /api/tags.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tags": h.Store.Tags(),
	})
}
