// Package classify defines the signal-source boundary: turning raw text
// into a normalized (PG, PE) signal pair. The engine consumes the
// Classifier contract only; the bundled lexicon scorer is a reference
// implementation, not a production vocabulary.
package classify

import (
	"context"

	"github.com/ppiankov/moralwatch/internal/model"
)

// Classifier produces a signal pair for an input text.
// Contract: PG + PE = 1 within the engine's tolerance, each in [0,1].
// Implementations must be deterministic for identical input.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.SignalPair, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(ctx context.Context, text string) (model.SignalPair, error)

// Classify implements Classifier.
func (f Func) Classify(ctx context.Context, text string) (model.SignalPair, error) {
	return f(ctx, text)
}
