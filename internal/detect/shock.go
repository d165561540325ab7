package detect

import "strings"

// ShockCompression is the factor applied to X when destabilizing-intent
// phrasing is detected. Demo-grade scalar compression; shock never
// changes the lock state by itself.
const ShockCompression = 0.5

// ShockDetector flags destabilizing-intent phrasing.
type ShockDetector struct {
	phrases []string
}

// NewShockDetector creates a detector from raw phrases.
func NewShockDetector(phrases []string) *ShockDetector {
	return &ShockDetector{phrases: lowerAll(phrases)}
}

// NewDefaultShockDetector uses the built-in phrase set.
func NewDefaultShockDetector() *ShockDetector {
	return NewShockDetector(DefaultPatterns.Shock)
}

// Detect reports whether the text contains a shock phrase.
func (d *ShockDetector) Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
