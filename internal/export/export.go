// Package export produces export payloads from the entity store.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/poyhsiao/notekeep/internal/errors"
	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/store"
)

// Payload is the JSON export contract.
type Payload struct {
	Notes       []models.Note `json:"notes"`
	Todos       []models.Todo `json:"todos"`
	Tags        []string      `json:"tags"`
	PinnedNotes []models.Note `json:"pinnedNotes"`
	ExportDate  string        `json:"exportDate"`
}

// Service builds exports from store snapshots.
type Service struct {
	store *store.Store
	md    goldmark.Markdown
}

// NewService creates an export service.
func NewService(s *store.Store) *Service {
	return &Service{
		store: s,
		md:    goldmark.New(),
	}
}

// Build assembles the export payload from the current state.
func (s *Service) Build(now time.Time) *Payload {
	snap := s.store.Snapshot()
	return &Payload{
		Notes:       snap.Notes,
		Todos:       snap.Todos,
		Tags:        snap.Tags,
		PinnedNotes: snap.PinnedNotes,
		ExportDate:  now.UTC().Format(time.RFC3339),
	}
}

// JSON serializes the export payload.
func (s *Service) JSON(now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(s.Build(now), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrExportFailed, "failed to encode export", err)
	}
	return data, nil
}

// Markdown renders all notes as a single markdown document.
func (s *Service) Markdown(now time.Time) string {
	snap := s.store.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "# Notes Export\n\nExported %s\n\n", now.UTC().Format("2006-01-02 15:04"))

	for _, n := range snap.Notes {
		fmt.Fprintf(&b, "---\n\n%s\n\n", n.Content)
		if len(n.Tags) > 0 {
			fmt.Fprintf(&b, "*Tags: %s*\n\n", strings.Join(n.Tags, ", "))
		}
		if n.Category != models.CategoryNone {
			fmt.Fprintf(&b, "*Category: %s*\n\n", n.Category)
		}
	}

	if len(snap.Todos) > 0 {
		b.WriteString("---\n\n## Tasks\n\n")
		for _, t := range snap.Todos {
			box := " "
			if t.Completed {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", box, t.Text, t.Priority)
		}
	}

	return b.String()
}

// RenderHTML converts markdown source to HTML, for previews.
func (s *Service) RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(errors.ErrExportFailed, "failed to render markdown", err)
	}
	return buf.String(), nil
}
