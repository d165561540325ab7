package audit

import "github.com/ppiankov/moralwatch/internal/model"

// Entry is one line in the hash-chained JSONL trail: an evaluation
// record plus chain metadata. All fields are structs and scalars (no
// map[string]any) to guarantee deterministic json.Marshal field order
// for reproducible hashing.
type Entry struct {
	Timestamp   string           `json:"ts"`
	SessionID   string           `json:"session_id"`
	Seq         int              `json:"seq"`
	InputSHA256 string           `json:"input_sha256"`
	Field       model.FieldState `json:"field"`
	Drift       float64          `json:"drift"`
	Shock       bool             `json:"shock,omitempty"`
	Violation   model.Violation  `json:"violation"`
	// SessionState is the lock state after this evaluation; every
	// transition, including the absorbing self-loop on LOCKED, lands
	// here before the caller sees a result.
	SessionState model.LockState `json:"session_state"`
	LockReason   string          `json:"lock_reason,omitempty"`
	Notes        []string        `json:"notes,omitempty"`
	// PatternsHash identifies the detector configuration that produced
	// this decision.
	PatternsHash string `json:"patterns_hash,omitempty"`
	PrevHash     string `json:"prev_hash"`
}

// Record converts the entry to the caller-facing evaluation record.
func (e Entry) Record() model.EvaluationRecord {
	return model.EvaluationRecord{
		SessionID:    e.SessionID,
		Seq:          e.Seq,
		Timestamp:    e.Timestamp,
		InputSHA256:  e.InputSHA256,
		Field:        e.Field,
		Drift:        e.Drift,
		Shock:        e.Shock,
		Violation:    e.Violation,
		SessionState: e.SessionState,
		LockReason:   e.LockReason,
		Notes:        e.Notes,
	}
}
