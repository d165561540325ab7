// Package field derives the conserved dominance field from a signal
// pair and enforces its algebraic invariants.
package field

import (
	"fmt"
	"math"

	"github.com/ppiankov/moralwatch/internal/model"
)

// DefaultEpsilon is the numeric tolerance for the PG + PE = 1 invariant.
// Covers floating-point error in the classifier; anything larger is an
// upstream contract breach, not something to silently correct.
const DefaultEpsilon = 1e-6

// InvariantError is raised when a signal pair breaks the conservation
// contract. Indicates an untrustworthy upstream classifier.
type InvariantError struct {
	Pair   model.SignalPair
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("field: invariant violation (pg=%g pe=%g): %s", e.Pair.PG, e.Pair.PE, e.Reason)
}

// Calculator computes field states under a fixed tolerance.
// The zero value uses DefaultEpsilon.
type Calculator struct {
	Epsilon float64
}

// Compute derives the field state from a signal pair. Pure; no side
// effects. Fails with *InvariantError if a signal is out of [0,1],
// not finite, or the pair does not sum to 1 within epsilon.
func (c Calculator) Compute(p model.SignalPair) (model.FieldState, error) {
	eps := c.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}

	if math.IsNaN(p.PG) || math.IsInf(p.PG, 0) || math.IsNaN(p.PE) || math.IsInf(p.PE, 0) {
		return model.FieldState{}, &InvariantError{Pair: p, Reason: "signal is not finite"}
	}
	if p.PG < -eps || p.PG > 1+eps || p.PE < -eps || p.PE > 1+eps {
		return model.FieldState{}, &InvariantError{Pair: p, Reason: "signal outside [0,1]"}
	}
	if math.Abs(p.PG+p.PE-1) > eps {
		return model.FieldState{}, &InvariantError{
			Pair:   p,
			Reason: fmt.Sprintf("pg+pe=%g differs from 1 beyond epsilon %g", p.PG+p.PE, eps),
		}
	}

	d := p.PG - p.PE
	return model.FieldState{
		PG: p.PG,
		PE: p.PE,
		D:  d,
		X:  math.Abs(d),
	}, nil
}
