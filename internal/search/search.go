// Package search provides tag and content querying across notes and todos.
package search

import (
	"strings"

	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/store"
)

// Kind discriminates result entries.
type Kind string

const (
	KindNote Kind = "note"
	KindTodo Kind = "todo"
)

// Result is a single search hit.
type Result struct {
	Kind Kind         `json:"kind"`
	Note *models.Note `json:"note,omitempty"`
	Todo *models.Todo `json:"todo,omitempty"`
}

// Engine queries the entity store. Matching is plain case-insensitive
// substring containment; results keep each collection's existing order,
// notes first, then todos. There is no ranking beyond source order.
type Engine struct {
	store *store.Store
}

// NewEngine creates a search engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Search executes a query. A blank query returns no results. A query with
// a "tag:" prefix matches the remainder against note tags only; todos are
// never included for tag queries.
func (e *Engine) Search(queryRaw string) []Result {
	query := strings.ToLower(strings.TrimSpace(queryRaw))
	if query == "" {
		return nil
	}

	if rest, ok := strings.CutPrefix(query, "tag:"); ok {
		return e.searchByTag(strings.TrimSpace(rest))
	}
	return e.searchAll(query)
}

// searchByTag matches term against each note's tag list.
func (e *Engine) searchByTag(term string) []Result {
	var results []Result
	for _, note := range e.store.Notes() {
		if tagMatch(note.Tags, term) {
			n := note
			results = append(results, Result{Kind: KindNote, Note: &n})
		}
	}
	return results
}

// searchAll matches notes on content, tags and category, and todos on text.
func (e *Engine) searchAll(query string) []Result {
	var results []Result

	for _, note := range e.store.Notes() {
		if noteMatch(&note, query) {
			n := note
			results = append(results, Result{Kind: KindNote, Note: &n})
		}
	}
	for _, todo := range e.store.Todos() {
		if strings.Contains(strings.ToLower(todo.Text), query) {
			t := todo
			results = append(results, Result{Kind: KindTodo, Todo: &t})
		}
	}
	return results
}

func noteMatch(n *models.Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	if tagMatch(n.Tags, query) {
		return true
	}
	return strings.Contains(strings.ToLower(string(n.Category)), query)
}

func tagMatch(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
