package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/poyhsiao/notekeep/internal/rewrite"
)

// Rewrite handles POST /api/rewrite
func (h *Handler) Rewrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text   string `json:"text"`
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}
	action := rewrite.Action(req.Action)
	if !action.Valid() {
		http.Error(w, "Unknown rewrite action", http.StatusBadRequest)
		return
	}

	result := h.Improver.Improve(req.Text, action)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"action": string(action),
		"text":   result,
	})
}
