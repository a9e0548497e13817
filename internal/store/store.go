// Package store owns the canonical note, todo, tag, history, pinned and
// trash collections and enforces their invariants.
//
// Every mutation ends with a persistence save; callers may treat state as
// durable once a call returns. A save failure is surfaced but the in-memory
// mutation is not rolled back, so memory and durable state may diverge
// until the next successful save.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/poyhsiao/notekeep/internal/errors"
	"github.com/poyhsiao/notekeep/internal/ident"
	"github.com/poyhsiao/notekeep/internal/logging"
	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/persistence"
)

// Store is the canonical entity store.
type Store struct {
	mu      sync.Mutex
	state   *models.State
	gateway persistence.Gateway
	ids     *ident.Generator
	now     func() time.Time
}

// Open loads state through the gateway and runs a trash purge pass.
// A missing state is replaced with an empty one.
func Open(gateway persistence.Gateway) (*Store, error) {
	state, err := gateway.Load()
	if err != nil {
		return nil, errors.Wrap(errors.ErrPersistence, "failed to load state", err)
	}
	if state == nil {
		state = models.NewState()
	}

	s := &Store{
		state:   state,
		gateway: gateway,
		ids:     ident.NewGenerator(),
		now:     time.Now,
	}

	if removed := s.PurgeExpired(s.now()); removed > 0 {
		logging.Info("Purged expired trash entries at load",
			map[string]interface{}{"removed": removed})
	}

	return s, nil
}

// =====================================================
// Note Operations
// =====================================================

// CreateNote creates a note at the front of the collection, merges its tags
// into the global tag set and records a history entry.
func (s *Store) CreateNote(content string, tags []string, category models.Category) (*models.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New(errors.ErrValidation, "note content is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:        s.ids.Next(),
		Content:   content,
		Tags:      cleanTags(tags),
		Category:  category,
		CreatedAt: s.now().UnixMilli(),
	}

	s.state.Notes = append([]models.Note{note}, s.state.Notes...)
	s.mergeTags(note.Tags)
	s.pushHistory(&note)

	out := note.Clone()
	return &out, s.save()
}

// PinSnapshot appends an independent note record to the pinned collection.
// Pinned notes are snapshots of editor content, not references into the
// notes collection: pinning the same content twice produces two records.
func (s *Store) PinSnapshot(content string, tags []string, category models.Category) (*models.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New(errors.ErrValidation, "note content is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:        s.ids.Next(),
		Content:   content,
		Tags:      cleanTags(tags),
		Category:  category,
		CreatedAt: s.now().UnixMilli(),
		Pinned:    true,
	}

	s.state.PinnedNotes = append(s.state.PinnedNotes, note)
	s.mergeTags(note.Tags)

	out := note.Clone()
	return &out, s.save()
}

// Unpin removes the pinned note with the given id. No-op if absent.
func (s *Store) Unpin(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.state.PinnedNotes {
		if n.ID == id {
			s.state.PinnedNotes = append(s.state.PinnedNotes[:i], s.state.PinnedNotes[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// DeleteNote moves a live note to the trash, stamped with the current time.
// The note is removed from the notes, history and pinned collections in the
// same step.
func (s *Store) DeleteNote(id models.ID) (*models.TrashEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.state.Notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New(errors.ErrNoteNotFound, fmt.Sprintf("note not found: %d", id))
	}

	note := s.state.Notes[idx]
	s.state.Notes = append(s.state.Notes[:idx], s.state.Notes[idx+1:]...)

	for i := 0; i < len(s.state.History); {
		if s.state.History[i].NoteID == id {
			s.state.History = append(s.state.History[:i], s.state.History[i+1:]...)
			continue
		}
		i++
	}
	for i := 0; i < len(s.state.PinnedNotes); {
		if s.state.PinnedNotes[i].ID == id {
			s.state.PinnedNotes = append(s.state.PinnedNotes[:i], s.state.PinnedNotes[i+1:]...)
			continue
		}
		i++
	}

	entry := models.TrashEntry{
		Note:      note,
		DeletedAt: s.now().UnixMilli(),
	}
	s.state.Trash = append(s.state.Trash, entry)

	out := entry
	out.Note = entry.Note.Clone()
	return &out, s.save()
}

// =====================================================
// Todo Operations
// =====================================================

// CreateTodo creates a todo at the front of the collection.
// An empty or unknown priority defaults to medium.
func (s *Store) CreateTodo(text string, priority models.Priority) (*models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New(errors.ErrValidation, "todo text is empty")
	}
	if !priority.Valid() || priority == "" {
		priority = models.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todo := models.Todo{
		ID:        s.ids.Next(),
		Text:      text,
		Priority:  priority,
		CreatedAt: s.now().UnixMilli(),
	}

	s.state.Todos = append([]models.Todo{todo}, s.state.Todos...)

	out := todo
	return &out, s.save()
}

// ToggleTodoCompleted flips the completion state of a todo.
func (s *Store) ToggleTodoCompleted(id models.ID) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Todos {
		if s.state.Todos[i].ID == id {
			s.state.Todos[i].Completed = !s.state.Todos[i].Completed
			out := s.state.Todos[i]
			return &out, s.save()
		}
	}
	return nil, errors.New(errors.ErrTodoNotFound, fmt.Sprintf("todo not found: %d", id))
}

// DeleteTodo removes a todo permanently. Todos are never trashed.
func (s *Store) DeleteTodo(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Todos {
		if t.ID == id {
			s.state.Todos = append(s.state.Todos[:i], s.state.Todos[i+1:]...)
			return s.save()
		}
	}
	return errors.New(errors.ErrTodoNotFound, fmt.Sprintf("todo not found: %d", id))
}

// =====================================================
// Accessors
// =====================================================

// Notes returns a snapshot of the live notes, newest first.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, len(s.state.Notes))
	for i := range s.state.Notes {
		out[i] = s.state.Notes[i].Clone()
	}
	return out
}

// Todos returns a snapshot of the todos, newest first.
func (s *Store) Todos() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Todo(nil), s.state.Todos...)
}

// Tags returns a snapshot of the global tag set in insertion order.
// The tag set never shrinks, even when the last note carrying a tag is
// deleted.
func (s *Store) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.state.Tags...)
}

// History returns a snapshot of the recency log, newest first.
func (s *Store) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HistoryEntry(nil), s.state.History...)
}

// PinnedNotes returns a snapshot of the pinned collection.
func (s *Store) PinnedNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, len(s.state.PinnedNotes))
	for i := range s.state.PinnedNotes {
		out[i] = s.state.PinnedNotes[i].Clone()
	}
	return out
}

// Trash returns a snapshot of the trash collection.
func (s *Store) Trash() []models.TrashEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TrashEntry, len(s.state.Trash))
	for i := range s.state.Trash {
		out[i] = s.state.Trash[i]
		out[i].Note = s.state.Trash[i].Note.Clone()
	}
	return out
}

// Preferences returns the current user preferences.
func (s *Store) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Preferences
}

// SetPreferences replaces the user preferences.
func (s *Store) SetPreferences(p models.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Preferences = p
	return s.save()
}

// Snapshot returns a deep copy of the full state, for export and sync.
func (s *Store) Snapshot() *models.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := models.NewState()
	for _, n := range s.state.Notes {
		out.Notes = append(out.Notes, n.Clone())
	}
	for _, t := range s.state.Todos {
		out.Todos = append(out.Todos, t)
	}
	out.Tags = append(out.Tags, s.state.Tags...)
	for _, h := range s.state.History {
		h.Tags = append([]string(nil), h.Tags...)
		out.History = append(out.History, h)
	}
	for _, n := range s.state.PinnedNotes {
		out.PinnedNotes = append(out.PinnedNotes, n.Clone())
	}
	for _, e := range s.state.Trash {
		e.Note = e.Note.Clone()
		out.Trash = append(out.Trash, e)
	}
	out.Preferences = s.state.Preferences
	return out
}

// =====================================================
// Internal helpers
// =====================================================

// save persists the current state through the gateway. Called with the
// store lock held, as the last step of every mutation.
func (s *Store) save() error {
	if err := s.gateway.Save(s.state); err != nil {
		logging.Error("Failed to persist state", err)
		return errors.Wrap(errors.ErrPersistence, "failed to persist state", err)
	}
	return nil
}

// mergeTags adds unseen tags to the global set, preserving insertion order.
func (s *Store) mergeTags(tags []string) {
	for _, tag := range tags {
		known := false
		for _, existing := range s.state.Tags {
			if existing == tag {
				known = true
				break
			}
		}
		if !known {
			s.state.Tags = append(s.state.Tags, tag)
		}
	}
}

// pushHistory prepends a history entry and truncates to the limit.
func (s *Store) pushHistory(n *models.Note) {
	entry := models.NewHistoryEntry(n, s.now().UnixMilli())
	s.state.History = append([]models.HistoryEntry{entry}, s.state.History...)
	if len(s.state.History) > models.HistoryLimit {
		s.state.History = s.state.History[:models.HistoryLimit]
	}
}

// cleanTags trims and drops empty tags. Duplicates within a note are kept;
// de-duplication happens only in the global tag set.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
