// Package lock owns the session hard-lock state machine.
//
// INVARIANT: transitions are monotonic. ACTIVE can become LOCKED;
// LOCKED absorbs everything. No call in this package, or anywhere
// else, returns a locked machine to ACTIVE. Recovery is full session
// reinitialization under a fresh identity.
package lock

import (
	"fmt"

	"github.com/ppiankov/moralwatch/internal/model"
)

// Transition describes one application of the transition function.
type Transition struct {
	From      model.LockState
	To        model.LockState
	Violation model.Violation
	Reason    string
}

// Machine is a hard-lock state machine for one session.
// Not safe for concurrent use; the session controller serializes
// access per session.
type Machine struct {
	state  model.LockState
	reason string
}

// NewMachine creates a machine in the given state. Used when restoring
// a session from the store.
func NewMachine(state model.LockState, reason string) *Machine {
	if state != model.Locked {
		state = model.Active
		reason = ""
	}
	return &Machine{state: state, reason: reason}
}

// NewActive creates a machine in the initial ACTIVE state.
func NewActive() *Machine {
	return &Machine{state: model.Active}
}

// State returns the current lock state.
func (m *Machine) State() model.LockState { return m.state }

// Locked reports whether the machine is in the terminal state.
func (m *Machine) Locked() bool { return m.state == model.Locked }

// Reason returns the lock reason, empty while ACTIVE.
func (m *Machine) Reason() string { return m.reason }

// Next evaluates the transition function without committing it.
// Returns the transition plus whether it would change the state.
// The split from Commit lets the session controller durably record a
// transition before it becomes observable.
//
//	ACTIVE  × none      → ACTIVE
//	ACTIVE  × violation → LOCKED
//	LOCKED  × anything  → LOCKED (absorbed, never an error)
func (m *Machine) Next(v model.Violation) (Transition, bool) {
	from := m.state

	switch from {
	case model.Locked:
		// Absorbing self-loop. The attempt is surfaced to the caller
		// and recorded, but nothing changes here.
		return Transition{From: from, To: model.Locked, Violation: v, Reason: m.reason}, false

	default: // model.Active
		if !v.IsLocking() {
			return Transition{From: from, To: model.Active, Violation: v}, false
		}
		reason := fmt.Sprintf("hard lock: %s pattern detected", v)
		return Transition{From: from, To: model.Locked, Violation: v, Reason: reason}, true
	}
}

// Commit applies a transition produced by Next. Committing cannot move
// the machine out of LOCKED.
func (m *Machine) Commit(tr Transition) {
	if m.state == model.Locked {
		return
	}
	if tr.To == model.Locked {
		m.state = model.Locked
		m.reason = tr.Reason
	}
}

// Apply is Next followed by Commit.
func (m *Machine) Apply(v model.Violation) (Transition, bool) {
	tr, changed := m.Next(v)
	m.Commit(tr)
	return tr, changed
}
