package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/poyhsiao/notekeep/internal/models"
)

// Todos handles GET /api/todos (list) and POST /api/todos (create).
func (h *Handler) Todos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"todos": h.Store.Todos(),
		})

	case http.MethodPost:
		var request struct {
			Text     string          `json:"text"`
			Priority models.Priority `json:"priority"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		todo, err := h.Store.CreateTodo(request.Text, request.Priority)
		if err != nil {
			writeError(w, err)
			return
		}

		h.Events.Broadcast("todo.created", map[string]interface{}{
			"id": todo.ID,
		})
		writeJSON(w, http.StatusCreated, todo)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ToggleTodo handles POST /api/todos/toggle.
func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
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

	todo, err := h.Store.ToggleTodoCompleted(request.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Events.Broadcast("todo.updated", map[string]interface{}{
		"id":        todo.ID,
		"completed": todo.Completed,
	})
	writeJSON(w, http.StatusOK, todo)
}

// DeleteTodo handles POST /api/todos/delete. Todos are hard-deleted.
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Store.DeleteTodo(request.ID); err != nil {
		writeError(w, err)
		return
	}

	h.Events.Broadcast("todo.deleted", map[string]interface{}{
		"id": request.ID,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": request.ID})
}
