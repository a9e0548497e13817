package store

import (
	"fmt"
	"time"

	"github.com/poyhsiao/notekeep/internal/errors"
	"github.com/poyhsiao/notekeep/internal/models"
)

// Trash lifecycle operations. Purging is lazy: it runs at load and on
// demand, not continuously, so entries may briefly outlive their window.

// PurgeExpired removes every trash entry strictly older than the retention
// window and returns the number removed. An entry deleted exactly 30 days
// ago is retained. Safe to call repeatedly; a second pass with no time
// elapsed removes nothing.
func (s *Store) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Trash[:0]
	removed := 0
	for _, e := range s.state.Trash {
		if e.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.state.Trash = kept

	if removed > 0 {
		// Best effort; purge results are reproducible from DeletedAt.
		_ = s.save()
	}
	return removed
}

// Restore moves a trash entry back to the front of the notes collection,
// strips the trash-only fields and records a history entry.
func (s *Store) Restore(id models.ID) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.state.Trash {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New(errors.ErrTrashNotFound, fmt.Sprintf("trash entry not found: %d", id))
	}

	note := s.state.Trash[idx].Note
	s.state.Trash = append(s.state.Trash[:idx], s.state.Trash[idx+1:]...)

	s.state.Notes = append([]models.Note{note}, s.state.Notes...)
	s.pushHistory(&note)

	out := note.Clone()
	return &out, s.save()
}

// PermanentlyDelete removes a trash entry unconditionally. An absent id is
// treated as already satisfied, not an error.
func (s *Store) PermanentlyDelete(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Trash {
		if e.ID == id {
			s.state.Trash = append(s.state.Trash[:i], s.state.Trash[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// EmptyTrash clears the entire trash collection and returns the prior size.
// The caller supplies the confirmation; without it nothing is removed.
func (s *Store) EmptyTrash(confirmed bool) (int, error) {
	if !confirmed {
		return 0, errors.New(errors.ErrValidation, "emptying the trash requires confirmation")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.state.Trash)
	if count == 0 {
		return 0, nil
	}
	s.state.Trash = s.state.Trash[:0]
	return count, s.save()
}
