// Package models provides data model definitions for the NoteKeep core.
package models

import "time"

// Priority represents a todo priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo represents a prioritized task with completion state.
// Todos are never trashed, only hard-deleted.
type Todo struct {
	ID        ID       `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	CreatedAt int64    `json:"created_at"` // Unix milliseconds
}

// CreatedAtTime returns CreatedAt as time.Time.
func (t *Todo) CreatedAtTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}
