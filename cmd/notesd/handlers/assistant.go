package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AssistantMessage handles POST /api/assistant
func (h *Handler) AssistantMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.Assistant.Handle(req.Message)

	// Commands may have created notes or tasks; let connected clients refresh.
	if resp.EditorContent != "" {
		h.Events.Broadcast("assistant.reply", map[string]interface{}{
			"message": strings.TrimSpace(req.Message),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
