// Package extract pulls structured facts out of email text with ordered
// regex rule ladders. Extractors never error; a miss is (value, false) and
// callers render a placeholder or omit the row.
package extract

import (
	"regexp"
	"strings"
)

// Rule is one named pattern in a ladder. A rule with a capture group yields
// the first group (matches whose group is empty are skipped); a rule
// without one yields the whole match. Accept, when set, can veto a
// candidate so the ladder moves on to the next rule.
type Rule struct {
	Name     string
	re       *regexp.Regexp
	Accept   func(string) bool
	fallback bool
}

// Pattern compiles expr into a Rule. Panics on a bad expression, so all
// ladders are validated at package load.
func Pattern(name, expr string) Rule {
	return Rule{Name: name, re: regexp.MustCompile(expr)}
}

// PatternFunc is Pattern with a candidate filter attached.
func PatternFunc(name, expr string, accept func(string) bool) Rule {
	return Rule{Name: name, re: regexp.MustCompile(expr), Accept: accept}
}

// Fallback marks a rule as a low-confidence catch-all. Fallback rules fire
// in direct extraction but are skipped by strict extraction, which keeps
// bare digit runs out of fact maps built without an expecting context.
func Fallback(r Rule) Rule {
	r.fallback = true
	return r
}

// Ladder is an ordered list of rules. Evaluation is first-match-wins in
// rule order: an earlier rule that matches anywhere in the text beats any
// later rule, which is how a labelled pattern outranks a bare one.
type Ladder struct {
	name  string
	rules []Rule
}

// NewLadder builds a ladder evaluated in the given rule order.
func NewLadder(name string, rules ...Rule) *Ladder {
	return &Ladder{name: name, rules: rules}
}

// Extract returns the first value matched by the highest-priority rule.
func (l *Ladder) Extract(text string) (string, bool) {
	value, _, ok := l.extract(text, true)
	return value, ok
}

// ExtractStrict is Extract with fallback rules skipped.
func (l *Ladder) ExtractStrict(text string) (string, bool) {
	value, _, ok := l.extract(text, false)
	return value, ok
}

// ExtractRule is Extract plus the name of the rule that fired.
func (l *Ladder) ExtractRule(text string) (value, rule string, ok bool) {
	return l.extract(text, true)
}

func (l *Ladder) extract(text string, includeFallback bool) (value, rule string, ok bool) {
	for _, r := range l.rules {
		if r.fallback && !includeFallback {
			continue
		}
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			candidate := m[0]
			if len(m) > 1 {
				candidate = m[1]
			}
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if r.Accept != nil && !r.Accept(candidate) {
				continue
			}
			return candidate, r.Name, true
		}
	}
	return "", "", false
}
