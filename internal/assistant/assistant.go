// Package assistant provides the rule-based free-text command interpreter.
//
// Classification is an ordered list of (predicate, handler) rules over the
// lower-cased input; the first matching rule wins and no second rule ever
// fires. Same input plus same store state always yields the same response
// and the same side effects.
package assistant

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/poyhsiao/notekeep/internal/logging"
	"github.com/poyhsiao/notekeep/internal/models"
	"github.com/poyhsiao/notekeep/internal/search"
	"github.com/poyhsiao/notekeep/internal/store"
)

// Response is the interpreter's answer. EditorContent and EditorTags are
// set when a topic template should be prefilled into the editor.
type Response struct {
	Text          string   `json:"text"`
	EditorContent string   `json:"editor_content,omitempty"`
	EditorTags    []string `json:"editor_tags,omitempty"`
}

// rule is one (predicate, handler) pair. Rules are evaluated in order.
type rule struct {
	name  string
	match func(q string) bool
	run   func(q, raw string) Response
}

// Interpreter dispatches free-text commands against the store.
type Interpreter struct {
	store  *store.Store
	search *search.Engine
	rules  []rule
}

// New creates an Interpreter bound to a store and search engine.
func New(s *store.Store, se *search.Engine) *Interpreter {
	i := &Interpreter{store: s, search: se}
	i.rules = []rule{
		{"topic-note", i.matchTopicNote, i.runTopicNote},
		{"create-note", i.matchCreateNote, i.runCreateNote},
		{"create-task", i.matchCreateTask, i.runCreateTask},
		{"search", i.matchSearch, i.runSearch},
		{"delete-guard", i.matchDeleteGuard, i.runDeleteGuard},
		{"meta", i.matchMeta, i.runMeta},
		{"info", i.matchInfo, i.runInfo},
	}
	return i
}

// Handle classifies and executes one command.
func (i *Interpreter) Handle(input string) Response {
	raw := strings.TrimSpace(input)
	q := strings.ToLower(raw)

	for _, r := range i.rules {
		if r.match(q) {
			logging.Debug("Assistant rule matched", map[string]interface{}{"rule": r.name})
			return r.run(q, raw)
		}
	}

	if len([]rune(q)) < 3 {
		return Response{Text: msgShortInput}
	}
	return Response{Text: msgNotUnderstood}
}

// =====================================================
// Rule 1: generic write/save phrasing -> topic template
// =====================================================

var topicNoteKeywords = []string{"write", "note down", "jot down", "remember", "save"}

func (i *Interpreter) matchTopicNote(q string) bool {
	// Meta-questions about writing are not create commands.
	if strings.Contains(q, "how to") || strings.Contains(q, "how do") {
		return false
	}
	for _, kw := range topicNoteKeywords {
		if containsLower(q, kw) {
			return true
		}
	}
	return false
}

func (i *Interpreter) runTopicNote(q, raw string) Response {
	t := inferTopic(q)

	if _, err := i.store.CreateNote(t.Body, t.Tags, models.CategoryNone); err != nil {
		logging.Warn("Assistant could not save topic note", map[string]interface{}{"error": err.Error()})
	}

	return Response{
		Text: fmt.Sprintf("I've started a %s note for you and put a template in the editor. Fill in the blanks and save when ready.",
			t.Name),
		EditorContent: t.Body,
		EditorTags:    append([]string(nil), t.Tags...),
	}
}

// =====================================================
// Rule 2: explicit create note
// =====================================================

var createKeywords = []string{"create", "add", "new", "make"}

func (i *Interpreter) matchCreateNote(q string) bool {
	return containsAny(q, createKeywords) && strings.Contains(q, "note")
}

func (i *Interpreter) runCreateNote(q, raw string) Response {
	tags, content := parseNoteCommand(raw)
	if content == "" {
		return Response{Text: msgNoteGuidance}
	}

	if _, err := i.store.CreateNote(content, tags, models.CategoryNone); err != nil {
		return Response{Text: "I couldn't save that note: " + err.Error()}
	}
	return Response{
		Text: fmt.Sprintf("Done! I saved that note. You now have %d notes.", len(i.store.Notes())),
	}
}

// parseNoteCommand extracts tags and content from a create-note phrase.
//
// Policy, in order: a "tags <list>:" clause wins and the content is what
// follows its colon; otherwise everything after the first colon; otherwise
// a quoted span; otherwise the input with the command words stripped.
func parseNoteCommand(raw string) (tags []string, content string) {
	lower := strings.ToLower(raw)

	if ti := strings.Index(lower, "tags "); ti >= 0 {
		rest := raw[ti+len("tags "):]
		if ci := strings.Index(rest, ":"); ci >= 0 {
			for _, t := range strings.Split(rest[:ci], ",") {
				t = strings.TrimSpace(t)
				if t != "" {
					tags = append(tags, t)
				}
			}
			content = strings.TrimSpace(rest[ci+1:])
			return tags, trimQuotes(content)
		}
	}

	if ci := strings.Index(raw, ":"); ci >= 0 {
		return nil, trimQuotes(strings.TrimSpace(raw[ci+1:]))
	}

	if m := quotedRe.FindStringSubmatch(raw); m != nil {
		if m[1] != "" {
			return nil, m[1]
		}
		return nil, m[2]
	}

	return nil, trimQuotes(stripWords(raw, "create", "add", "new", "make", "a", "an", "note", "please"))
}

var quotedRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

// =====================================================
// Rule 3: explicit create task
// =====================================================

func (i *Interpreter) matchCreateTask(q string) bool {
	return containsAny(q, createKeywords) && (strings.Contains(q, "task") || strings.Contains(q, "todo"))
}

func (i *Interpreter) runCreateTask(q, raw string) Response {
	var text string
	if ci := strings.Index(raw, ":"); ci >= 0 {
		text = strings.TrimSpace(raw[ci+1:])
	} else {
		text = stripWords(raw, "create", "add", "new", "make", "a", "an", "task", "todo", "please")
	}
	if text == "" {
		return Response{Text: msgTaskGuidance}
	}

	todo, err := i.store.CreateTodo(text, models.PriorityMedium)
	if err != nil {
		return Response{Text: "I couldn't save that task: " + err.Error()}
	}
	return Response{
		Text: fmt.Sprintf("Task added: %q. You now have %d tasks.", todo.Text, len(i.store.Todos())),
	}
}

// =====================================================
// Rule 4: search dispatch
// =====================================================

var tagTermRe = regexp.MustCompile(`\btag\s+(\w+)`)

func (i *Interpreter) matchSearch(q string) bool {
	return strings.Contains(q, "search") &&
		(strings.Contains(q, "note") || strings.Contains(q, "tag"))
}

func (i *Interpreter) runSearch(q, raw string) Response {
	var query, display string

	if m := tagTermRe.FindStringSubmatch(q); m != nil {
		display = m[1]
		query = "tag:" + m[1]
	} else if ci := strings.Index(raw, ":"); ci >= 0 {
		display = strings.TrimSpace(raw[ci+1:])
		query = display
	} else {
		display = stripWords(raw, "search", "my", "notes", "note", "for", "please")
		query = display
	}

	if query == "" {
		return Response{Text: msgSearchGuidance}
	}

	results := i.search.Search(query)
	return Response{
		Text: fmt.Sprintf("I searched for %q and found %d result(s). They're in the search panel.",
			display, len(results)),
	}
}

// =====================================================
// Rule 5: destructive commands are never executed
// =====================================================

func (i *Interpreter) matchDeleteGuard(q string) bool {
	return strings.Contains(q, "delete") || strings.Contains(q, "remove")
}

func (i *Interpreter) runDeleteGuard(q, raw string) Response {
	return Response{Text: msgDeleteGuard}
}

// =====================================================
// Rule 6: canned meta answers
// =====================================================

func (i *Interpreter) matchMeta(q string) bool {
	for _, m := range metaResponses {
		if strings.Contains(q, m.trigger) {
			return true
		}
	}
	return false
}

func (i *Interpreter) runMeta(q, raw string) Response {
	for _, m := range metaResponses {
		if strings.Contains(q, m.trigger) {
			return Response{Text: m.reply}
		}
	}
	return Response{Text: msgNotUnderstood}
}

// =====================================================
// Rule 7: live-count informational fallback
// =====================================================

func (i *Interpreter) matchInfo(q string) bool {
	if isGreeting(q) || strings.Contains(q, "help") {
		return true
	}
	for _, kw := range []string{"note", "task", "todo", "tag", "productivity", "word"} {
		if strings.Contains(q, kw) {
			return true
		}
	}
	for _, f := range featurePointers {
		if strings.Contains(q, f.trigger) {
			return true
		}
	}
	return false
}

func (i *Interpreter) runInfo(q, raw string) Response {
	switch {
	case isGreeting(q):
		return Response{Text: "Hello! I can create notes and tasks, search, and answer questions about what you've saved. What would you like to do?"}
	case strings.Contains(q, "help"):
		return Response{Text: msgHelp}
	case strings.Contains(q, "productivity"):
		return Response{Text: fmt.Sprintf("You've completed %d%% of your tasks.", i.productivity())}
	case strings.Contains(q, "word"):
		return Response{Text: fmt.Sprintf("Your notes contain %d words in total.", i.totalWords())}
	case strings.Contains(q, "tag"):
		return Response{Text: i.tagSummary()}
	case strings.Contains(q, "task") || strings.Contains(q, "todo"):
		return Response{Text: i.taskSummary()}
	case strings.Contains(q, "note"):
		return Response{Text: fmt.Sprintf("You have %d notes right now.", len(i.store.Notes()))}
	}

	for _, f := range featurePointers {
		if strings.Contains(q, f.trigger) {
			return Response{Text: f.reply}
		}
	}
	return Response{Text: msgNotUnderstood}
}

// productivity returns round(completed/total*100), or 0 with no tasks.
func (i *Interpreter) productivity() int {
	todos := i.store.Todos()
	if len(todos) == 0 {
		return 0
	}
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(todos)) * 100))
}

func (i *Interpreter) totalWords() int {
	total := 0
	for _, n := range i.store.Notes() {
		total += n.WordCount()
	}
	return total
}

func (i *Interpreter) taskSummary() string {
	todos := i.store.Todos()
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return fmt.Sprintf("You have %d tasks: %d pending and %d completed.",
		len(todos), len(todos)-completed, completed)
}

// tagSummary lists the first 5 tags in insertion order, with an ellipsis
// when there are more.
func (i *Interpreter) tagSummary() string {
	tags := i.store.Tags()
	if len(tags) == 0 {
		return "You haven't used any tags yet. Add some to a note to organize your collection."
	}
	shown := tags
	suffix := ""
	if len(tags) > 5 {
		shown = tags[:5]
		suffix = ", …"
	}
	return fmt.Sprintf("You're using %d tags: %s%s.", len(tags), strings.Join(shown, ", "), suffix)
}

// =====================================================
// Helpers
// =====================================================

func isGreeting(q string) bool {
	if q == "hi" || strings.HasPrefix(q, "hi ") || strings.HasPrefix(q, "hi,") {
		return true
	}
	return strings.Contains(q, "hello") || strings.Contains(q, "hey")
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// containsLower reports whether q contains kw; q must already be
// lower-cased.
func containsLower(q, kw string) bool {
	return strings.Contains(q, kw)
}

// stripWords removes the given command words (case-insensitive, whole
// fields) and returns the rest, whitespace-joined.
func stripWords(raw string, words ...string) string {
	drop := make(map[string]bool, len(words))
	for _, w := range words {
		drop[w] = true
	}

	var kept []string
	for _, f := range strings.Fields(raw) {
		if drop[strings.ToLower(strings.Trim(f, ".,!?"))] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// trimQuotes strips leading and trailing quote characters.
func trimQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
