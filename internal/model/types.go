package model

import "time"

// LockState is the session lock status.
type LockState string

const (
	// Active accepts evaluations. Initial state for every new session.
	Active LockState = "active"
	// Locked is terminal. No transition leads out of it within a session;
	// the only recovery is reinitialization under a fresh session ID.
	Locked LockState = "locked"
)

// Violation classifies a detected moral-authority claim pattern.
type Violation string

const (
	// ViolationNone means no authority-claim pattern matched.
	ViolationNone Violation = "none"
	// SelfDeclaredPerfection is a first-person claim of moral perfection
	// or total rightness.
	SelfDeclaredPerfection Violation = "self_declared_perfection"
	// AbsoluteInfallibility is a first-person claim of being incapable
	// of moral error.
	AbsoluteInfallibility Violation = "absolute_infallibility"
	// CircularMoralAuthority is a claim that a judgment is valid because
	// the speaker's own authority validates it.
	CircularMoralAuthority Violation = "circular_moral_authority"
)

// ViolationRank maps violations to their fixed priority order for
// deterministic tie-breaking. Lower rank wins; ViolationNone is last.
var ViolationRank = map[Violation]int{
	SelfDeclaredPerfection: 0,
	AbsoluteInfallibility:  1,
	CircularMoralAuthority: 2,
	ViolationNone:          3,
}

// IsLocking reports whether the violation triggers the hard lock.
func (v Violation) IsLocking() bool {
	return v != "" && v != ViolationNone
}

// SignalPair is the normalized two-signal output of the classifier.
// Contract: PG + PE = 1 within the configured tolerance; each in [0,1].
// Ephemeral: exists only for the duration of one evaluation.
type SignalPair struct {
	PG float64 `json:"pg"`
	PE float64 `json:"pe"`
}

// FieldState is the conserved dominance field derived from a SignalPair.
// Immutable once computed.
type FieldState struct {
	PG float64 `json:"pg"`
	PE float64 `json:"pe"`
	// D is directional dominance, PG − PE, in [-1, 1].
	D float64 `json:"d"`
	// X is distance from dominance collapse, |D|, in [0, 1].
	// X→0 is near-balanced, X→1 is maximal dominance.
	X float64 `json:"x"`
}

// EvaluationRecord is the immutable per-evaluation record owned by the
// audit trail. Input text is never stored raw; only its SHA-256.
type EvaluationRecord struct {
	SessionID   string     `json:"session_id"`
	Seq         int        `json:"seq"`
	Timestamp   string     `json:"ts"`
	InputSHA256 string     `json:"input_sha256"`
	Field       FieldState `json:"field"`
	Drift       float64    `json:"drift"`
	Shock       bool       `json:"shock,omitempty"`
	Violation   Violation  `json:"violation"`
	// SessionState is the lock state resulting from this evaluation.
	SessionState LockState `json:"session_state"`
	LockReason   string    `json:"lock_reason,omitempty"`
	Notes        []string  `json:"notes,omitempty"`
}

// EvaluationResult is what Evaluate returns to the caller.
type EvaluationResult struct {
	SessionID    string     `json:"session_id"`
	Seq          int        `json:"seq"`
	Field        FieldState `json:"field"`
	Drift        float64    `json:"drift"`
	Shock        bool       `json:"shock,omitempty"`
	Violation    Violation  `json:"violation"`
	SessionState LockState  `json:"session_state"`
	// Rejected is true when the session was already locked and the
	// evaluation was fast-rejected without running the pipeline.
	Rejected   bool     `json:"rejected,omitempty"`
	LockReason string   `json:"lock_reason,omitempty"`
	Notes      []string `json:"notes,omitempty"`
}

// SessionInfo is the durable identity and lock status of a session.
type SessionInfo struct {
	SessionID  string    `json:"session_id"`
	LockState  LockState `json:"lock_state"`
	LockReason string    `json:"lock_reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LockedAt   time.Time `json:"locked_at,omitzero"`
	Seq        int       `json:"seq"`
}

// SessionSummary is a derived view over a session's trail.
type SessionSummary struct {
	SessionID   string    `json:"session_id"`
	Events      int       `json:"events_analyzed"`
	Shocks      int       `json:"shocks"`
	Circularity int       `json:"circularity_warnings"`
	HardLocks   int       `json:"hard_locks"`
	MeanDrift   float64   `json:"mean_drift"`
	FinalX      float64   `json:"final_x"`
	FinalState  LockState `json:"final_status"`
}
