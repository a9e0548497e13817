// Package models tests for the core data types.
package models

import (
	"strings"
	"testing"
	"time"
)

// TestTrashEntry_expiryBoundary verifies the retention boundary behavior.
func TestTrashEntry_expiryBoundary(t *testing.T) {
	deleted := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	e := TrashEntry{DeletedAt: deleted.UnixMilli()}

	retention := TrashRetentionDays * 24 * time.Hour

	if e.Expired(deleted.Add(retention)) {
		t.Error("Expired(exactly 30 days) = true, want retained")
	}
	if !e.Expired(deleted.Add(retention + time.Millisecond)) {
		t.Error("Expired(30 days + 1ms) = false, want purged")
	}
	if e.Expired(deleted) {
		t.Error("Expired(at deletion) = true")
	}
}

// TestTrashEntry_daysRemaining verifies countdown values, including
// non-positive ones for lazily purged entries.
func TestTrashEntry_daysRemaining(t *testing.T) {
	deleted := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	e := TrashEntry{DeletedAt: deleted.UnixMilli()}

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 30},
		{10 * 24 * time.Hour, 20},
		{30 * 24 * time.Hour, 0},
		{35 * 24 * time.Hour, -5},
	}
	for _, tt := range tests {
		if got := e.DaysRemaining(deleted.Add(tt.elapsed)); got != tt.want {
			t.Errorf("DaysRemaining(+%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

// TestNewHistoryEntry_truncation verifies rune-safe preview truncation.
func TestNewHistoryEntry_truncation(t *testing.T) {
	short := Note{ID: 1, Content: "short"}
	if e := NewHistoryEntry(&short, 0); e.Preview != "short" {
		t.Errorf("Preview = %q, want untruncated content", e.Preview)
	}

	long := Note{ID: 2, Content: strings.Repeat("é", 60)}
	e := NewHistoryEntry(&long, 0)
	if got := len([]rune(e.Preview)); got != HistoryPreviewLen {
		t.Errorf("Preview length = %d runes, want %d", got, HistoryPreviewLen)
	}
	if !strings.HasPrefix(long.Content, e.Preview) {
		t.Error("Preview is not a prefix of the content")
	}
}

// TestNewHistoryEntry_copiesTags verifies the entry owns its tag slice.
func TestNewHistoryEntry_copiesTags(t *testing.T) {
	n := Note{ID: 3, Content: "tagged", Tags: []string{"a"}}
	e := NewHistoryEntry(&n, 0)

	n.Tags[0] = "mutated"
	if e.Tags[0] != "a" {
		t.Errorf("entry tags = %v, want an independent copy", e.Tags)
	}
}

// TestNote_wordCount verifies whitespace-delimited counting.
func TestNote_wordCount(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two  words", 2},
		{"line\nbreaks\tand spaces", 4},
	}
	for _, tt := range tests {
		n := Note{Content: tt.content}
		if got := n.WordCount(); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

// TestNote_clone verifies the tag slice is deep-copied.
func TestNote_clone(t *testing.T) {
	n := Note{ID: 1, Content: "original", Tags: []string{"a", "b"}}
	c := n.Clone()

	c.Tags[0] = "mutated"
	if n.Tags[0] != "a" {
		t.Errorf("Clone() shares the tag slice")
	}
}

// TestCategory_valid verifies the category whitelist.
func TestCategory_valid(t *testing.T) {
	for _, c := range []Category{CategoryNone, CategoryWork, CategoryPersonal, CategoryIdeas, CategoryUrgent} {
		if !c.Valid() {
			t.Errorf("Category(%q).Valid() = false, want true", c)
		}
	}
	if Category("finance").Valid() {
		t.Error("Category(finance).Valid() = true, want false")
	}
}

// TestPriority_valid verifies the priority whitelist.
func TestPriority_valid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("Priority(%q).Valid() = false, want true", p)
		}
	}
	if Priority("critical").Valid() {
		t.Error("Priority(critical).Valid() = true, want false")
	}
}

// TestID_time verifies the id round-trips through its timestamp.
func TestID_time(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := ID(at.UnixMilli())

	if !id.Time().Equal(at) {
		t.Errorf("ID.Time() = %v, want %v", id.Time(), at)
	}
}
