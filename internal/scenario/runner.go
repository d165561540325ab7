package scenario

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/moralwatch/internal/classify"
	"github.com/ppiankov/moralwatch/internal/detect"
	"github.com/ppiankov/moralwatch/internal/field"
)

// Run evaluates all cases against the given patterns and lexicon.
// Cases are independent: each runs a single classify/compute/detect
// pass with no session state.
func Run(s *Scenario, patterns detect.Patterns, classifier classify.Classifier) (*RunResult, error) {
	detector := detect.FromPatterns(patterns)
	shock := detect.NewShockDetector(patterns.Shock)
	calc := field.Calculator{}

	result := &RunResult{
		Name:  s.Name,
		Total: len(s.Cases),
	}

	for i, c := range s.Cases {
		pair, err := classifier.Classify(context.Background(), c.Text)
		if err != nil {
			return nil, fmt.Errorf("case %d: classify: %w", i+1, err)
		}
		fs, err := calc.Compute(pair)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		shocked := shock.Detect(c.Text)
		if shocked {
			fs.X *= detect.ShockCompression
		}
		violation := detector.Detect(c.Text, fs)

		actual := string(violation)
		expected := strings.ToLower(strings.TrimSpace(c.Expect))

		cr := CaseResult{
			Index:    i + 1,
			Text:     c.Text,
			Expected: expected,
			Actual:   actual,
			Shock:    shocked,
			X:        fs.X,
		}

		cr.Passed = actual == expected
		if c.ExpectShock != nil && shocked != *c.ExpectShock {
			cr.Passed = false
		}

		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}

		result.Cases = append(result.Cases, cr)
	}

	return result, nil
}

// LoadAndRun loads a scenario YAML file, loads patterns and lexicon, and runs.
func LoadAndRun(path, patternsPath, lexiconPath string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	patterns, err := detect.Load(patternsPath)
	if err != nil {
		return nil, fmt.Errorf("load patterns: %w", err)
	}

	classifier, err := classify.LoadLexicon(lexiconPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	result, err := Run(&s, patterns, classifier)
	if err != nil {
		return nil, err
	}
	result.File = path

	return result, nil
}
