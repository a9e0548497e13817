// Package sqlite tests for the single-row state gateway.
package sqlite

import (
	"testing"

	"github.com/poyhsiao/notekeep/internal/models"
)

// TestLoad_emptyDatabase verifies a fresh database yields (nil, nil).
func TestLoad_emptyDatabase(t *testing.T) {
	g, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error = %v", err)
	}
	defer g.Close()

	state, err := g.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state != nil {
		t.Errorf("Load() = %+v, want nil for a fresh database", state)
	}
}

// TestSaveLoad_roundtrip verifies state survives a save and reload.
func TestSaveLoad_roundtrip(t *testing.T) {
	g, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error = %v", err)
	}
	defer g.Close()

	state := models.NewState()
	state.Notes = append(state.Notes, models.Note{
		ID:       models.ID(1700000000000),
		Content:  "stored in sqlite",
		Category: models.CategoryWork,
	})
	state.Todos = append(state.Todos, models.Todo{
		ID:       models.ID(1700000000001),
		Text:     "task",
		Priority: models.PriorityHigh,
	})

	if err := g.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil after save")
	}
	if len(loaded.Notes) != 1 || loaded.Notes[0].Content != "stored in sqlite" {
		t.Errorf("loaded notes = %+v, want the saved note", loaded.Notes)
	}
	if len(loaded.Todos) != 1 || loaded.Todos[0].Priority != models.PriorityHigh {
		t.Errorf("loaded todos = %+v, want the saved todo", loaded.Todos)
	}
}

// TestSave_overwritesSingleRow verifies repeated saves keep one snapshot.
func TestSave_overwritesSingleRow(t *testing.T) {
	g, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error = %v", err)
	}
	defer g.Close()

	first := models.NewState()
	first.Tags = append(first.Tags, "old")
	if err := g.Save(first); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	second := models.NewState()
	second.Tags = append(second.Tags, "new")
	if err := g.Save(second); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0] != "new" {
		t.Errorf("loaded tags = %v, want only the latest snapshot", loaded.Tags)
	}
}

// TestOpen_createsDatabaseFile verifies the on-disk open path.
func TestOpen_createsDatabaseFile(t *testing.T) {
	dir := t.TempDir()

	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer g.Close()

	state := models.NewState()
	state.Tags = append(state.Tags, "persisted")
	if err := g.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0] != "persisted" {
		t.Errorf("loaded tags = %v, want [persisted]", loaded.Tags)
	}
}
