package handlers

import (
	"net/http"
	"time"
)

// SyncPush handles POST /api/sync/push
func (h *Handler) SyncPush(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Sync == nil {
		http.Error(w, "Sync is not configured", http.StatusServiceUnavailable)
		return
	}

	h.Events.Broadcast("sync.started", nil)

	result, err := h.Sync.Push(r.Context())
	if err != nil {
		h.Events.Broadcast("sync.failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, err)
		return
	}

	h.Events.Broadcast("sync.completed", map[string]interface{}{
		"key":       result.Key,
		"sizeBytes": result.SizeBytes,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"key":        result.Key,
		"sizeBytes":  result.SizeBytes,
		"durationMs": result.Duration.Milliseconds(),
	})
}

// SyncStatus handles GET /api/sync/status
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.Sync == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"enabled": false,
		})
		return
	}

	resp := map[string]interface{}{
		"enabled": true,
		"status":  string(h.Sync.Status()),
	}
	if last := h.Sync.LastSync(); last != nil {
		resp["lastSync"] = last.Format(time.RFC3339)
	}
	if err := h.Sync.LastError(); err != nil {
		resp["lastError"] = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}
