// Package models provides data model definitions for the NoteKeep core.
package models

import "time"

// TrashRetentionDays is how long a trashed note is kept before it becomes
// eligible for purge. An entry deleted exactly this many days ago is still
// retained; only strictly older entries are purged.
const TrashRetentionDays = 30

// TrashEntry is a soft-deleted note awaiting purge or restore.
type TrashEntry struct {
	Note
	DeletedAt int64 `json:"deleted_at"` // Unix milliseconds
}

// DeletedAtTime returns DeletedAt as time.Time.
func (e *TrashEntry) DeletedAtTime() time.Time {
	return time.UnixMilli(e.DeletedAt)
}

// Expired reports whether the entry's age exceeds the retention window.
func (e *TrashEntry) Expired(now time.Time) bool {
	return now.Sub(e.DeletedAtTime()) > TrashRetentionDays*24*time.Hour
}

// DaysRemaining returns the days left before the entry expires. Purging is
// lazy, so the result may be zero or negative for entries not yet purged.
func (e *TrashEntry) DaysRemaining(now time.Time) int {
	elapsed := int(now.Sub(e.DeletedAtTime()) / (24 * time.Hour))
	return TrashRetentionDays - elapsed
}
