package field

import (
	"errors"
	"math"
	"testing"

	"github.com/ppiankov/moralwatch/internal/model"
)

func TestBalancedPairCollapsesToZero(t *testing.T) {
	var c Calculator
	fs, err := c.Compute(model.SignalPair{PG: 0.5, PE: 0.5})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if fs.D != 0 || fs.X != 0 {
		t.Errorf("expected D=0 X=0, got D=%g X=%g", fs.D, fs.X)
	}
}

func TestDominanceDirection(t *testing.T) {
	var c Calculator

	fs, err := c.Compute(model.SignalPair{PG: 0.8, PE: 0.2})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(fs.D-0.6) > 1e-12 {
		t.Errorf("expected D=0.6, got %g", fs.D)
	}
	if math.Abs(fs.X-0.6) > 1e-12 {
		t.Errorf("expected X=0.6, got %g", fs.X)
	}

	fs, err = c.Compute(model.SignalPair{PG: 0.1, PE: 0.9})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if fs.D >= 0 {
		t.Errorf("expected negative D for PE dominance, got %g", fs.D)
	}
	if fs.X != math.Abs(fs.D) {
		t.Errorf("expected X=|D|, got X=%g D=%g", fs.X, fs.D)
	}
}

func TestXStaysInUnitRange(t *testing.T) {
	var c Calculator
	pairs := []model.SignalPair{
		{PG: 0, PE: 1},
		{PG: 1, PE: 0},
		{PG: 0.3, PE: 0.7},
		{PG: 0.5000001, PE: 0.4999999},
	}
	for _, p := range pairs {
		fs, err := c.Compute(p)
		if err != nil {
			t.Fatalf("Compute(%v): %v", p, err)
		}
		if fs.X < 0 || fs.X > 1 {
			t.Errorf("X out of range for %v: %g", p, fs.X)
		}
	}
}

func TestConservationBreachFails(t *testing.T) {
	var c Calculator
	_, err := c.Compute(model.SignalPair{PG: 0.7, PE: 0.4})
	if err == nil {
		t.Fatal("expected invariant violation for pg+pe=1.1")
	}
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *InvariantError, got %T", err)
	}
}

func TestToleranceWithinEpsilon(t *testing.T) {
	var c Calculator
	if _, err := c.Compute(model.SignalPair{PG: 0.5 + 4e-7, PE: 0.5}); err != nil {
		t.Errorf("expected deviation within epsilon to pass, got %v", err)
	}
	if _, err := c.Compute(model.SignalPair{PG: 0.5 + 2e-6, PE: 0.5}); err == nil {
		t.Error("expected deviation beyond epsilon to fail")
	}
}

func TestCustomEpsilon(t *testing.T) {
	c := Calculator{Epsilon: 0.01}
	if _, err := c.Compute(model.SignalPair{PG: 0.504, PE: 0.5}); err != nil {
		t.Errorf("expected pass under widened epsilon, got %v", err)
	}
}

func TestNonFiniteSignalsFail(t *testing.T) {
	var c Calculator
	for _, p := range []model.SignalPair{
		{PG: math.NaN(), PE: 0.5},
		{PG: 0.5, PE: math.Inf(1)},
	} {
		if _, err := c.Compute(p); err == nil {
			t.Errorf("expected failure for %v", p)
		}
	}
}

func TestNeverSilentlyCorrects(t *testing.T) {
	var c Calculator
	fs, err := c.Compute(model.SignalPair{PG: 0.6, PE: 0.4})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if fs.PG != 0.6 || fs.PE != 0.4 {
		t.Errorf("signals must pass through unmodified, got pg=%g pe=%g", fs.PG, fs.PE)
	}
}
