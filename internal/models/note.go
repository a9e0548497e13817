// Package models provides data model definitions for the NoteKeep core.
package models

import (
	"strings"
	"time"
)

// ID identifies a note or todo. IDs are millisecond creation timestamps
// with a monotonic tiebreak, so they sort in creation order.
type ID int64

// Time returns the creation instant encoded in the ID.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id))
}

// Category classifies a note. The empty category is valid.
type Category string

const (
	CategoryNone     Category = ""
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryIdeas    Category = "ideas"
	CategoryUrgent   Category = "urgent"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryNone, CategoryWork, CategoryPersonal, CategoryIdeas, CategoryUrgent:
		return true
	}
	return false
}

// Note represents a user-authored text entry.
type Note struct {
	ID        ID       `json:"id"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Category  Category `json:"category,omitempty"`
	CreatedAt int64    `json:"created_at"` // Unix milliseconds
	Pinned    bool     `json:"pinned"`
}

// CreatedAtTime returns CreatedAt as time.Time.
func (n *Note) CreatedAtTime() time.Time {
	return time.UnixMilli(n.CreatedAt)
}

// WordCount returns the number of whitespace-separated tokens in the content.
func (n *Note) WordCount() int {
	return len(strings.Fields(n.Content))
}

// Clone returns a deep copy of the note.
func (n *Note) Clone() Note {
	out := *n
	out.Tags = append([]string(nil), n.Tags...)
	return out
}
