// Package export tests for the export payloads and markdown rendering.
package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/persistence/file"
	"github.com/poyhsiao/notekeep/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	gw := file.New(t.TempDir() + "/state.json")
	s, err := store.Open(gw)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	return NewService(s), s
}

var exportTime = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

// TestJSON_payloadShape verifies the export contract fields.
func TestJSON_payloadShape(t *testing.T) {
	svc, s := newTestService(t)

	if _, err := s.CreateNote("exported note", []string{"work"}, models.CategoryWork); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if _, err := s.CreateTodo("exported task", models.PriorityLow); err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if _, err := s.PinSnapshot("pinned", nil, ""); err != nil {
		t.Fatalf("PinSnapshot() error = %v", err)
	}

	data, err := svc.JSON(exportTime)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"notes", "todos", "tags", "pinnedNotes", "exportDate"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("export missing key %q", key)
		}
	}

	var date string
	if err := json.Unmarshal(payload["exportDate"], &date); err != nil {
		t.Fatalf("exportDate not a string: %v", err)
	}
	if date != "2025-06-15T09:30:00Z" {
		t.Errorf("exportDate = %q, want RFC3339 UTC", date)
	}
}

// TestJSON_excludesTrashAndHistory verifies internal collections stay out
// of the export.
func TestJSON_excludesTrashAndHistory(t *testing.T) {
	svc, s := newTestService(t)

	note, err := s.CreateNote("to be trashed", nil, "")
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if _, err := s.DeleteNote(note.ID); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}

	data, err := svc.JSON(exportTime)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	out := string(data)
	if strings.Contains(out, `"trash"`) || strings.Contains(out, `"history"`) {
		t.Errorf("export leaks internal collections: %s", out)
	}
	if strings.Contains(out, "to be trashed") {
		t.Error("export contains a trashed note")
	}
}

// TestMarkdown_document verifies the rendered document structure.
func TestMarkdown_document(t *testing.T) {
	svc, s := newTestService(t)

	if _, err := s.CreateNote("First note body", []string{"alpha", "beta"}, models.CategoryIdeas); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	todo, err := s.CreateTodo("ship the release", models.PriorityHigh)
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if _, err := s.ToggleTodoCompleted(todo.ID); err != nil {
		t.Fatalf("ToggleTodoCompleted() error = %v", err)
	}

	doc := svc.Markdown(exportTime)

	if !strings.HasPrefix(doc, "# Notes Export") {
		t.Error("Markdown() missing title")
	}
	if !strings.Contains(doc, "First note body") {
		t.Error("Markdown() missing note content")
	}
	if !strings.Contains(doc, "*Tags: alpha, beta*") {
		t.Error("Markdown() missing tag line")
	}
	if !strings.Contains(doc, "*Category: ideas*") {
		t.Error("Markdown() missing category line")
	}
	if !strings.Contains(doc, "- [x] ship the release (high)") {
		t.Error("Markdown() missing completed task line")
	}
}

// TestRenderHTML verifies goldmark conversion for previews.
func TestRenderHTML(t *testing.T) {
	svc, _ := newTestService(t)

	html, err := svc.RenderHTML("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("RenderHTML() = %q, missing heading", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("RenderHTML() = %q, missing emphasis", html)
	}
}
