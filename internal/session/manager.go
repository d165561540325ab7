// Package session orchestrates evaluations. The Manager is the single
// entry point and the only holder of mutable session state: every
// evaluation goes through the same read-check-transition-persist
// sequence under a per-session mutex, so no code path can skip the
// lock check.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/ppiankov/moralwatch/internal/audit"
	"github.com/ppiankov/moralwatch/internal/classify"
	"github.com/ppiankov/moralwatch/internal/detect"
	"github.com/ppiankov/moralwatch/internal/field"
	"github.com/ppiankov/moralwatch/internal/lock"
	"github.com/ppiankov/moralwatch/internal/model"
	"github.com/ppiankov/moralwatch/internal/store"
)

// ErrUnknownSession mirrors the store sentinel for callers that only
// import this package.
var ErrUnknownSession = store.ErrUnknownSession

// ErrAuditWrite marks a durability failure: the evaluation failed as a
// whole and no state change was committed. Safe to retry.
var ErrAuditWrite = errors.New("session: audit append failed")

// Config holds manager configuration.
type Config struct {
	TrailPath    string
	DBPath       string
	PatternsPath string
	LexiconPath  string
	Epsilon      float64
	// Classifier overrides the bundled lexicon scorer when set.
	Classifier classify.Classifier
}

// Manager owns sessions and runs the evaluation pipeline.
type Manager struct {
	cfg  Config
	calc field.Calculator

	// swapped atomically on hot reload
	mu           sync.RWMutex
	classifier   classify.Classifier
	detector     *detect.Detector
	shock        *detect.ShockDetector
	patternsHash string

	trail *audit.Trail
	store *store.Store

	sessions sync.Map // session_id → *handle
}

// handle is per-session mutable state. Its mutex enforces the
// single-writer discipline: within one session the
// read-check-transition-persist sequence is exclusive.
type handle struct {
	mu      sync.Mutex
	machine *lock.Machine
	seq     int
	// lastX is the previous uncompressed X, used for drift.
	lastX     float64
	hasLast   bool
	lastField model.FieldState
}

// New creates a Manager, loading detector patterns, the lexicon, the
// audit trail, and the session store.
func New(cfg Config) (*Manager, error) {
	patterns, patternsHash, err := detect.LoadWithHash(cfg.PatternsPath)
	if err != nil {
		return nil, fmt.Errorf("session: load patterns: %w", err)
	}

	classifier := cfg.Classifier
	if classifier == nil {
		classifier, err = classify.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("session: load lexicon: %w", err)
		}
	}

	trail, err := audit.Open(cfg.TrailPath)
	if err != nil {
		return nil, fmt.Errorf("session: open trail: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		trail.Close()
		return nil, fmt.Errorf("session: open store: %w", err)
	}

	return &Manager{
		cfg:          cfg,
		calc:         field.Calculator{Epsilon: cfg.Epsilon},
		classifier:   classifier,
		detector:     detect.FromPatterns(patterns),
		shock:        detect.NewShockDetector(patterns.Shock),
		patternsHash: patternsHash,
		trail:        trail,
		store:        st,
	}, nil
}

// Close releases the trail and store.
func (m *Manager) Close() error {
	err := m.trail.Close()
	if cerr := m.store.Close(); err == nil {
		err = cerr
	}
	return err
}

// Reinitialize discards nothing and destroys nothing retroactively: it
// creates a brand-new session identity in ACTIVE state with an empty
// trail slice. Prior sessions remain readable under their own IDs but
// are no longer the caller's evaluation context.
func (m *Manager) Reinitialize() (model.SessionInfo, error) {
	info, err := m.store.CreateSession()
	if err != nil {
		return model.SessionInfo{}, err
	}
	m.sessions.Store(info.SessionID, &handle{machine: lock.NewActive()})
	return info, nil
}

// Evaluate runs one evaluation against a session. Within a session,
// calls are serialized; across sessions they are independent.
func (m *Manager) Evaluate(ctx context.Context, sessionID, text string) (model.EvaluationResult, error) {
	h, err := m.handleFor(sessionID)
	if err != nil {
		return model.EvaluationResult{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	m.mu.RLock()
	classifier := m.classifier
	detector := m.detector
	shockDet := m.shock
	patternsHash := m.patternsHash
	m.mu.RUnlock()

	if h.machine.Locked() {
		return m.rejectLocked(sessionID, h, text, patternsHash)
	}

	pair, err := classifier.Classify(ctx, text)
	if err != nil {
		return model.EvaluationResult{}, fmt.Errorf("session: classify: %w", err)
	}

	fs, err := m.calc.Compute(pair)
	if err != nil {
		// Upstream contract breach. Nothing is recorded and no state
		// changes: the evaluation never happened.
		return model.EvaluationResult{}, err
	}

	var notes []string

	// Drift tracks the raw field before any shock compression.
	drift := 0.0
	if h.hasLast {
		drift = fs.X - h.lastX
	}
	rawX := fs.X

	shocked := shockDet.Detect(text)
	if shocked {
		before := fs.X
		fs.X *= detect.ShockCompression
		notes = append(notes, fmt.Sprintf("shock detected: compressed X from %.3f to %.3f", before, fs.X))
	}

	violation := detector.Detect(text, fs)
	if violation == model.CircularMoralAuthority {
		notes = append(notes, "circular moral authority pattern detected")
	}

	tr, changed := h.machine.Next(violation)
	if changed {
		notes = append(notes, tr.Reason)
		notes = append(notes, "session is now permanently locked until full reinitialization")
	}

	seq := h.seq + 1
	entry := audit.Entry{
		SessionID:    sessionID,
		Seq:          seq,
		InputSHA256:  hashInput(text),
		Field:        fs,
		Drift:        drift,
		Shock:        shocked,
		Violation:    violation,
		SessionState: tr.To,
		LockReason:   tr.Reason,
		Notes:        notes,
		PatternsHash: patternsHash,
	}

	// Durability gates everything: the transition becomes observable
	// only after the record is on disk.
	if err := m.trail.Append(entry); err != nil {
		return model.EvaluationResult{}, fmt.Errorf("%w: %v", ErrAuditWrite, err)
	}

	h.machine.Commit(tr)
	h.seq = seq
	h.lastX = rawX
	h.hasLast = true
	h.lastField = fs

	if err := m.store.Commit(sessionID, seq, tr.To, tr.Reason); err != nil {
		// The trail already holds the durable record; the registry row
		// is stale until the next successful commit.
		return model.EvaluationResult{}, fmt.Errorf("session: store commit: %w", err)
	}

	return model.EvaluationResult{
		SessionID:    sessionID,
		Seq:          seq,
		Field:        fs,
		Drift:        drift,
		Shock:        shocked,
		Violation:    violation,
		SessionState: tr.To,
		LockReason:   tr.Reason,
		Notes:        notes,
	}, nil
}

// rejectLocked records the absorbing self-loop and returns the
// fast-reject result. Neither the classifier nor the detector runs.
func (m *Manager) rejectLocked(sessionID string, h *handle, text, patternsHash string) (model.EvaluationResult, error) {
	notes := []string{"session locked; evaluation rejected"}
	seq := h.seq + 1

	entry := audit.Entry{
		SessionID:    sessionID,
		Seq:          seq,
		InputSHA256:  hashInput(text),
		Field:        h.lastField,
		Violation:    model.ViolationNone,
		SessionState: model.Locked,
		LockReason:   h.machine.Reason(),
		Notes:        notes,
		PatternsHash: patternsHash,
	}
	if err := m.trail.Append(entry); err != nil {
		return model.EvaluationResult{}, fmt.Errorf("%w: %v", ErrAuditWrite, err)
	}

	h.seq = seq
	if err := m.store.Commit(sessionID, seq, model.Locked, h.machine.Reason()); err != nil {
		return model.EvaluationResult{}, fmt.Errorf("session: store commit: %w", err)
	}

	return model.EvaluationResult{
		SessionID:    sessionID,
		Seq:          seq,
		Field:        h.lastField,
		Violation:    model.ViolationNone,
		SessionState: model.Locked,
		Rejected:     true,
		LockReason:   h.machine.Reason(),
		Notes:        notes,
	}, nil
}

// ReadTrail returns the ordered evaluation records for a session.
// Read-only and always available, including for sessions of earlier
// runs and regardless of lock state.
func (m *Manager) ReadTrail(sessionID string) ([]model.EvaluationRecord, error) {
	entries, err := audit.Read(m.cfg.TrailPath, sessionID)
	if err != nil {
		return nil, err
	}
	records := make([]model.EvaluationRecord, len(entries))
	for i, e := range entries {
		records[i] = e.Record()
	}
	return records, nil
}

// Session returns the registry row for a session.
func (m *Manager) Session(sessionID string) (model.SessionInfo, error) {
	return m.store.Get(sessionID)
}

// Sessions lists all known sessions, newest first.
func (m *Manager) Sessions() ([]model.SessionInfo, error) {
	return m.store.List()
}

// Summary derives the high-level session view from the trail.
func (m *Manager) Summary(sessionID string) (model.SessionSummary, error) {
	if _, err := m.store.Get(sessionID); err != nil {
		return model.SessionSummary{}, err
	}
	records, err := m.ReadTrail(sessionID)
	if err != nil {
		return model.SessionSummary{}, err
	}

	s := model.SessionSummary{SessionID: sessionID, FinalState: model.Active}
	if len(records) == 0 {
		return s, nil
	}

	var driftSum float64
	for _, r := range records {
		s.Events++
		driftSum += r.Drift
		if r.Shock {
			s.Shocks++
		}
		if r.Violation == model.CircularMoralAuthority {
			s.Circularity++
		}
		if r.Violation.IsLocking() {
			s.HardLocks++
		}
	}
	last := records[len(records)-1]
	s.MeanDrift = driftSum / float64(s.Events)
	s.FinalX = last.Field.X
	s.FinalState = last.SessionState
	return s, nil
}

// ReloadPatterns re-reads the detector patterns (and lexicon, when the
// bundled classifier is in use) and swaps them atomically. In-flight
// evaluations keep the configuration they started with.
func (m *Manager) ReloadPatterns() error {
	patterns, patternsHash, err := detect.LoadWithHash(m.cfg.PatternsPath)
	if err != nil {
		return fmt.Errorf("session: reload patterns: %w", err)
	}

	var classifier classify.Classifier
	if m.cfg.Classifier == nil {
		classifier, err = classify.LoadLexicon(m.cfg.LexiconPath)
		if err != nil {
			return fmt.Errorf("session: reload lexicon: %w", err)
		}
	}

	m.mu.Lock()
	m.detector = detect.FromPatterns(patterns)
	m.shock = detect.NewShockDetector(patterns.Shock)
	m.patternsHash = patternsHash
	if classifier != nil {
		m.classifier = classifier
	}
	m.mu.Unlock()
	return nil
}

// PatternsHash returns the hash of the active detector configuration.
func (m *Manager) PatternsHash() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.patternsHash
}

// handleFor returns the in-memory handle for a session, restoring it
// from the store and trail after a restart.
func (m *Manager) handleFor(sessionID string) (*handle, error) {
	if v, ok := m.sessions.Load(sessionID); ok {
		return v.(*handle), nil
	}

	info, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	h := &handle{
		machine: lock.NewMachine(info.LockState, info.LockReason),
		seq:     info.Seq,
	}
	// Recover drift continuity from the last trail entry, if any. The
	// trail, not the registry, is the source of truth for lock state:
	// a crash or registry failure between the trail append and the
	// store commit leaves the row stale, so reconcile from the trail
	// and repair the row. Reconciliation only moves toward LOCKED.
	if entries, err := audit.Read(m.cfg.TrailPath, sessionID); err == nil && len(entries) > 0 {
		last := entries[len(entries)-1]
		h.lastField = last.Field
		h.lastX = last.Field.X
		h.hasLast = true
		if last.Seq > h.seq {
			h.seq = last.Seq
		}
		if last.SessionState == model.Locked && !h.machine.Locked() {
			h.machine = lock.NewMachine(model.Locked, last.LockReason)
			if err := m.store.Commit(sessionID, h.seq, model.Locked, last.LockReason); err != nil {
				return nil, fmt.Errorf("session: reconcile lock state: %w", err)
			}
		}
	}

	actual, _ := m.sessions.LoadOrStore(sessionID, h)
	return actual.(*handle), nil
}

func hashInput(text string) string {
	h := sha256.Sum256([]byte(text))
	return "sha256:" + hex.EncodeToString(h[:])
}
