// Package detect inspects input text for self-referential
// moral-authority claims. Detection is pattern-based and deterministic:
// identical input and configuration always yield the same violation.
// Production vocabularies and threshold calibration are out of scope;
// the bundled patterns are the reference set.
package detect

import (
	"strings"

	"github.com/ppiankov/moralwatch/internal/model"
)

// Rule is a single violation detector. Match must be deterministic and
// side-effect free. The field state is advisory: extreme dominance may
// corroborate a weak linguistic pattern.
type Rule interface {
	Kind() model.Violation
	Match(text string, f model.FieldState) bool
}

// Detector evaluates rules in fixed priority order. First match wins.
type Detector struct {
	rules []Rule
}

// New creates a Detector from rules, sorted into the fixed priority
// order regardless of the order given.
func New(rules ...Rule) *Detector {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && model.ViolationRank[sorted[j].Kind()] < model.ViolationRank[sorted[j-1].Kind()]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return &Detector{rules: sorted}
}

// NewDefault creates a Detector with the built-in reference patterns.
func NewDefault() *Detector {
	return FromPatterns(DefaultPatterns)
}

// Detect returns the highest-priority violation matching the text, or
// ViolationNone.
func (d *Detector) Detect(text string, f model.FieldState) model.Violation {
	lower := strings.ToLower(text)
	for _, r := range d.rules {
		if r.Match(lower, f) {
			return r.Kind()
		}
	}
	return model.ViolationNone
}

// phraseRule matches when any configured phrase appears in the text.
// Phrases are matched case-insensitively; Detect lowercases once.
type phraseRule struct {
	kind    model.Violation
	phrases []string
}

func (r *phraseRule) Kind() model.Violation { return r.kind }

func (r *phraseRule) Match(lower string, _ model.FieldState) bool {
	for _, p := range r.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// corroboratedRule extends a phrase rule with weaker cues that only
// count when the field shows near-maximal dominance.
type corroboratedRule struct {
	phraseRule
	weakCues  []string
	threshold float64
}

func (r *corroboratedRule) Match(lower string, f model.FieldState) bool {
	if r.phraseRule.Match(lower, f) {
		return true
	}
	if f.X < r.threshold {
		return false
	}
	for _, c := range r.weakCues {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}
