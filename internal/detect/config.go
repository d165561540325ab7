package detect

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/moralwatch/internal/model"
)

// CorroborationThreshold is the X value above which weak circular cues
// count as a match. Documented assumption; production calibration is
// out of scope.
const CorroborationThreshold = 0.9

// Patterns holds the raw phrase lists organized by violation kind.
// All matching is case-insensitive substring containment.
type Patterns struct {
	Perfection    []string `yaml:"perfection"`
	Infallibility []string `yaml:"infallibility"`
	Circular      []string `yaml:"circular"`
	// CircularWeak phrases only match when corroborated by near-maximal
	// field dominance (X >= threshold).
	CircularWeak []string `yaml:"circular_weak"`
	Shock        []string `yaml:"shock"`
}

// DefaultPatterns is the built-in reference pattern set.
var DefaultPatterns = Patterns{
	Perfection: []string{
		"i am morally perfect",
		"i am perfectly moral",
		"i am always right",
		"my moral judgment is flawless",
	},
	Infallibility: []string{
		"i cannot be wrong about morality",
		"i am incapable of moral error",
		"i cannot make a moral mistake",
		"i am morally infallible",
	},
	Circular: []string{
		"it is right because i say so",
		"it is good because i define good",
		"i am the standard of morality",
		"my authority makes it moral",
	},
	CircularWeak: []string{
		"because i say so",
		"because i decree it",
	},
	Shock: []string{
		"i don't care who gets hurt",
		"no matter the cost",
		"even if people suffer",
		"crush anyone",
		"wipe them out",
	},
}

// FromPatterns builds a Detector (and its shock companion) from raw
// patterns, lowercasing every phrase once up front.
func FromPatterns(p Patterns) *Detector {
	return New(
		&phraseRule{kind: model.SelfDeclaredPerfection, phrases: lowerAll(p.Perfection)},
		&phraseRule{kind: model.AbsoluteInfallibility, phrases: lowerAll(p.Infallibility)},
		&corroboratedRule{
			phraseRule: phraseRule{kind: model.CircularMoralAuthority, phrases: lowerAll(p.Circular)},
			weakCues:   lowerAll(p.CircularWeak),
			threshold:  CorroborationThreshold,
		},
	)
}

// Load reads patterns from a YAML file. Empty path or missing file
// falls back to defaults. Invalid YAML is an error.
func Load(path string) (Patterns, error) {
	if path == "" {
		return DefaultPatterns, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPatterns, nil
		}
		return Patterns{}, err
	}
	var p Patterns
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Patterns{}, err
	}
	if len(p.Perfection) == 0 {
		p.Perfection = DefaultPatterns.Perfection
	}
	if len(p.Infallibility) == 0 {
		p.Infallibility = DefaultPatterns.Infallibility
	}
	if len(p.Circular) == 0 {
		p.Circular = DefaultPatterns.Circular
	}
	if len(p.Shock) == 0 {
		p.Shock = DefaultPatterns.Shock
	}
	return p, nil
}

// LoadWithHash loads patterns and returns a sha256 of the effective
// configuration, recorded in every audit entry so trail readers can
// tell which pattern set produced a decision.
func LoadWithHash(path string) (Patterns, string, error) {
	p, err := Load(path)
	if err != nil {
		return Patterns{}, "", err
	}
	raw, err := yaml.Marshal(p)
	if err != nil {
		return Patterns{}, "", err
	}
	h := sha256.Sum256(raw)
	return p, "sha256:" + hex.EncodeToString(h[:]), nil
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
