// Package rewrite provides deterministic rule-based text rewriting.
//
// It is the guaranteed-available alternative to the network
// text-improvement call: same input and action always produce the same
// output, with no remote dependency. Rewrite is total over valid string
// input; it never fails.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Action selects a rewrite transformation.
type Action string

const (
	ActionGrammar      Action = "grammar"
	ActionProfessional Action = "professional"
	ActionSimplify     Action = "simplify"
	ActionExpand       Action = "expand"
	ActionReformat     Action = "reformat"
)

// Valid reports whether the action is a known one.
func (a Action) Valid() bool {
	switch a {
	case ActionGrammar, ActionProfessional, ActionSimplify, ActionExpand, ActionReformat:
		return true
	}
	return false
}

// casePolicy selects how a dictionary replacement treats the casing of the
// matched word.
type casePolicy int

const (
	// casePreserveFirst keeps the case of the matched word's first letter;
	// the rest follows the replacement's own casing.
	casePreserveFirst casePolicy = iota

	// caseVerbatim substitutes the replacement text as written.
	caseVerbatim
)

// rule is one compiled (matcher, replacement) pair.
type rule struct {
	re          *regexp.Regexp
	replacement string
	policy      casePolicy
}

// compileRules builds word-boundary, case-insensitive rules from a table.
func compileRules(pairs [][2]string, policy casePolicy) []rule {
	rules := make([]rule, 0, len(pairs))
	for _, p := range pairs {
		rules = append(rules, rule{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p[0]) + `\b`),
			replacement: p[1],
			policy:      policy,
		})
	}
	return rules
}

// Engine applies the rewrite actions.
type Engine struct {
	grammarRules      []rule
	professionalRules []rule
	simplifyRules     []rule

	fillerRe       *regexp.Regexp
	repeatSpaceRe  *regexp.Regexp
	missingSpaceRe *regexp.Regexp
	spaceBeforeRe  *regexp.Regexp
	pronounIRe     *regexp.Regexp
}

// NewEngine compiles the rule tables.
func NewEngine() *Engine {
	return &Engine{
		grammarRules:      compileRules(grammarPairs, casePreserveFirst),
		professionalRules: compileRules(professionalPairs, casePreserveFirst),
		simplifyRules:     compileRules(simplifyPairs, caseVerbatim),

		fillerRe:       regexp.MustCompile(`(?i)\b(?:` + strings.Join(fillerWords, "|") + `)\b,? ?`),
		repeatSpaceRe:  regexp.MustCompile(`\s{2,}`),
		missingSpaceRe: regexp.MustCompile(`([.!?])([A-Za-z])`),
		spaceBeforeRe:  regexp.MustCompile(`\s+([.,!?;:])`),
		pronounIRe:     regexp.MustCompile(`\bi\b`),
	}
}

// Rewrite applies the given action to text. Unknown actions return the
// text unchanged.
func (e *Engine) Rewrite(text string, action Action) string {
	switch action {
	case ActionGrammar:
		return e.grammar(text)
	case ActionProfessional:
		return e.professional(text)
	case ActionSimplify:
		return e.simplify(text)
	case ActionExpand:
		return e.expand(text)
	case ActionReformat:
		return e.reformat(text)
	}
	return text
}

// =====================================================
// Actions
// =====================================================

func (e *Engine) grammar(text string) string {
	text = applyRules(text, e.grammarRules)
	text = e.repeatSpaceRe.ReplaceAllString(text, " ")
	text = e.missingSpaceRe.ReplaceAllString(text, "$1 $2")
	text = e.spaceBeforeRe.ReplaceAllString(text, "$1")
	// A bare lowercase "i" also covers i'm, i'll, i've, i'd: the
	// apostrophe is a word boundary.
	text = e.pronounIRe.ReplaceAllString(text, "I")
	text = capitalizeSentences(text)
	return ensureTerminal(text)
}

func (e *Engine) professional(text string) string {
	text = applyRules(text, e.professionalRules)
	text = e.fillerRe.ReplaceAllString(text, "")
	text = e.repeatSpaceRe.ReplaceAllString(text, " ")
	text = capitalizeSentences(strings.TrimSpace(text))
	return ensureTerminal(text)
}

func (e *Engine) simplify(text string) string {
	return applyRules(text, e.simplifyRules)
}

func (e *Engine) expand(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if len(splitSentences(text)) <= 1 {
		return text + " " + expandSingleSentence
	}
	return text + " " + expandMultiSentence
}

func (e *Engine) reformat(text string) string {
	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return "# " + strings.TrimSpace(text) + "\n\n" + reformatShortNote
	}

	var b strings.Builder
	b.WriteString(reformatHeading)
	b.WriteString("\n\n")
	for i, s := range sentences {
		fmt.Fprintf(&b, "%d. %s.\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// =====================================================
// Passes
// =====================================================

// applyRules runs each rule once over the text, in declaration order.
func applyRules(text string, rules []rule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllStringFunc(text, func(m string) string {
			if r.policy == caseVerbatim {
				return r.replacement
			}
			return matchFirstCase(m, r.replacement)
		})
	}
	return text
}

// matchFirstCase upper-cases the replacement's first letter when the
// matched word started with an upper-case letter.
func matchFirstCase(match, replacement string) string {
	if match == "" || replacement == "" {
		return replacement
	}
	if unicode.IsUpper([]rune(match)[0]) {
		r := []rune(replacement)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return replacement
}

// capitalizeSentences upper-cases the first letter of the text and the
// first letter following sentence-ending punctuation.
func capitalizeSentences(text string) string {
	out := []rune(text)
	pending := true
	for i, r := range out {
		switch {
		case r == '.' || r == '!' || r == '?':
			pending = true
		case unicode.IsSpace(r):
			// keep pending across spaces
		case unicode.IsLetter(r):
			if pending {
				out[i] = unicode.ToUpper(r)
			}
			pending = false
		default:
			pending = false
		}
	}
	return string(out)
}

// ensureTerminal appends a period when the text lacks sentence-ending
// punctuation.
func ensureTerminal(text string) string {
	text = strings.TrimRight(text, " \t")
	if text == "" {
		return text
	}
	switch text[len(text)-1] {
	case '.', '!', '?':
		return text
	}
	return text + "."
}

// splitSentences splits on sentence-ending punctuation, trimming and
// dropping empty fragments.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
