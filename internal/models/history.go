// Package models provides data model definitions for the NoteKeep core.
package models

const (
	// HistoryLimit caps the recency log; the oldest entry is dropped first.
	HistoryLimit = 20

	// HistoryPreviewLen is the maximum preview length in a history entry.
	HistoryPreviewLen = 50
)

// HistoryEntry is a truncated projection of a note, recorded when a note is
// created or restored from trash.
type HistoryEntry struct {
	NoteID    ID       `json:"note_id"`
	Preview   string   `json:"preview"`
	Timestamp int64    `json:"timestamp"` // Unix milliseconds
	Category  Category `json:"category,omitempty"`
	Tags      []string `json:"tags"`
}

// NewHistoryEntry builds a history entry from a note, truncating the preview.
func NewHistoryEntry(n *Note, now int64) HistoryEntry {
	preview := n.Content
	if r := []rune(preview); len(r) > HistoryPreviewLen {
		preview = string(r[:HistoryPreviewLen])
	}
	return HistoryEntry{
		NoteID:    n.ID,
		Preview:   preview,
		Timestamp: now,
		Category:  n.Category,
		Tags:      append([]string(nil), n.Tags...),
	}
}
