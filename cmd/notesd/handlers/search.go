package handlers

import (
	"net/http"

	"github.com/poyhsiao/notekeep/internal/search"
)

// SearchNotes handles GET /api/search?q=...
// A blank query returns an empty result set.
func (h *Handler) SearchNotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	results := h.Search.Search(query)
	if results == nil {
		results = []search.Result{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
		"total":   len(results),
	})
}
