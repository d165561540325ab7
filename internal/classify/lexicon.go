package classify

import (
	"context"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/moralwatch/internal/model"
)

// Lexicon holds the raw keyword lists used by the reference scorer.
type Lexicon struct {
	Good []string `yaml:"good"`
	Harm []string `yaml:"harm"`
	// HitWeight is how far one keyword hit moves the split from 0.5.
	HitWeight float64 `yaml:"hit_weight"`
}

// DefaultLexicon is the built-in demonstration vocabulary.
var DefaultLexicon = Lexicon{
	Good:      []string{"help", "protect", "care", "honest", "respect", "safety"},
	Harm:      []string{"hurt", "kill", "destroy", "abuse", "dominate", "oppress"},
	HitWeight: 0.1,
}

// LexiconClassifier is the bundled keyword scorer. It maps good/harm
// keyword hits into a rough PG/PE split around 0.5, clamps to [0,1],
// and renormalizes so the pair sums to exactly 1.
type LexiconClassifier struct {
	lex Lexicon
}

// NewLexiconClassifier creates a scorer from a lexicon. A zero
// HitWeight falls back to the default.
func NewLexiconClassifier(lex Lexicon) *LexiconClassifier {
	if lex.HitWeight == 0 {
		lex.HitWeight = DefaultLexicon.HitWeight
	}
	return &LexiconClassifier{lex: lex}
}

// NewDefault creates a scorer with the built-in vocabulary.
func NewDefault() *LexiconClassifier {
	return NewLexiconClassifier(DefaultLexicon)
}

// LoadLexicon reads a lexicon from a YAML file. Empty path or missing
// file falls back to the built-in defaults. Invalid YAML is an error.
func LoadLexicon(path string) (*LexiconClassifier, error) {
	if path == "" {
		return NewDefault(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}
	if len(lex.Good) == 0 {
		lex.Good = DefaultLexicon.Good
	}
	if len(lex.Harm) == 0 {
		lex.Harm = DefaultLexicon.Harm
	}
	return NewLexiconClassifier(lex), nil
}

// Classify implements Classifier. Deterministic and side-effect free.
func (c *LexiconClassifier) Classify(_ context.Context, text string) (model.SignalPair, error) {
	lower := strings.ToLower(text)

	goodHits := 0
	for _, w := range c.lex.Good {
		if strings.Contains(lower, w) {
			goodHits++
		}
	}
	harmHits := 0
	for _, w := range c.lex.Harm {
		if strings.Contains(lower, w) {
			harmHits++
		}
	}

	rawPG := 0.5 + c.lex.HitWeight*float64(goodHits) - c.lex.HitWeight*float64(harmHits)
	pg := clamp01(rawPG)
	pe := clamp01(1 - rawPG)

	// Renormalize so the conservation invariant holds exactly.
	total := pg + pe
	if total == 0 {
		total = 1
	}
	return model.SignalPair{PG: pg / total, PE: pe / total}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
