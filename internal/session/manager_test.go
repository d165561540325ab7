package session

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/moralwatch/internal/audit"
	"github.com/ppiankov/moralwatch/internal/classify"
	"github.com/ppiankov/moralwatch/internal/field"
	"github.com/ppiankov/moralwatch/internal/model"
)

// countingClassifier wraps the lexicon scorer and counts invocations,
// so tests can prove the locked fast-reject path never classifies.
type countingClassifier struct {
	calls atomic.Int64
	inner classify.Classifier
}

func (c *countingClassifier) Classify(ctx context.Context, text string) (model.SignalPair, error) {
	c.calls.Add(1)
	return c.inner.Classify(ctx, text)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newTestManager(t *testing.T, classifier classify.Classifier) *Manager {
	t.Helper()
	dir := t.TempDir()
	m, err := New(Config{
		TrailPath:  filepath.Join(dir, "trail.jsonl"),
		DBPath:     filepath.Join(dir, "sessions.db"),
		Classifier: classifier,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestBalancedNeutralEvaluation(t *testing.T) {
	m := newTestManager(t, nil)
	info, err := m.Reinitialize()
	if err != nil {
		t.Fatalf("Reinitialize: %v", err)
	}

	res, err := m.Evaluate(context.Background(), info.SessionID, "an unremarkable sentence")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Field.D != 0 || res.Field.X != 0 {
		t.Errorf("expected D=0 X=0, got D=%g X=%g", res.Field.D, res.Field.X)
	}
	if res.Violation != model.ViolationNone {
		t.Errorf("expected none, got %s", res.Violation)
	}
	if res.SessionState != model.Active {
		t.Errorf("expected active, got %s", res.SessionState)
	}
	if res.Drift != 0 {
		t.Errorf("expected first-evaluation drift 0, got %g", res.Drift)
	}
}

func TestPerfectionClaimLocksSession(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	res, err := m.Evaluate(context.Background(), info.SessionID, "I am morally perfect and always right")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Violation != model.SelfDeclaredPerfection {
		t.Errorf("expected self_declared_perfection, got %s", res.Violation)
	}
	if res.SessionState != model.Locked {
		t.Errorf("expected locked, got %s", res.SessionState)
	}

	// The transition must be the last record in the trail.
	records, err := m.ReadTrail(info.SessionID)
	if err != nil {
		t.Fatalf("ReadTrail: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected a trail record")
	}
	last := records[len(records)-1]
	if last.SessionState != model.Locked || last.Violation != model.SelfDeclaredPerfection {
		t.Errorf("unexpected last record: %+v", last)
	}

	// Registry agrees.
	got, err := m.Session(info.SessionID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got.LockState != model.Locked {
		t.Errorf("expected registry locked, got %s", got.LockState)
	}
}

func TestLockedSessionFastRejects(t *testing.T) {
	counter := &countingClassifier{inner: classify.NewDefault()}
	m := newTestManager(t, counter)
	info, _ := m.Reinitialize()

	if _, err := m.Evaluate(context.Background(), info.SessionID, "i cannot be wrong about morality"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	callsAtLock := counter.calls.Load()

	// Two further calls, one of them with violating text: both
	// rejected, classifier and detector never invoked again.
	for _, text := range []string{"hello", "I am morally perfect"} {
		res, err := m.Evaluate(context.Background(), info.SessionID, text)
		if err != nil {
			t.Fatalf("Evaluate after lock: %v", err)
		}
		if !res.Rejected {
			t.Error("expected rejected result")
		}
		if res.SessionState != model.Locked {
			t.Errorf("expected locked, got %s", res.SessionState)
		}
		if res.Violation != model.ViolationNone {
			t.Errorf("rejected evaluation must not classify violations, got %s", res.Violation)
		}
	}
	if counter.calls.Load() != callsAtLock {
		t.Errorf("classifier invoked on locked session: %d calls after lock", counter.calls.Load()-callsAtLock)
	}

	// Each absorbing self-loop still lands in the trail.
	records, _ := m.ReadTrail(info.SessionID)
	if len(records) != 3 {
		t.Fatalf("expected 3 records (lock + 2 rejects), got %d", len(records))
	}
	for _, r := range records[1:] {
		if r.SessionState != model.Locked {
			t.Errorf("expected locked self-loop record, got %+v", r)
		}
	}
}

func TestInvariantViolationRecordsNothing(t *testing.T) {
	broken := classify.Func(func(context.Context, string) (model.SignalPair, error) {
		return model.SignalPair{PG: 0.7, PE: 0.4}, nil
	})
	m := newTestManager(t, broken)
	info, _ := m.Reinitialize()

	_, err := m.Evaluate(context.Background(), info.SessionID, "whatever")
	if err == nil {
		t.Fatal("expected invariant violation")
	}
	var inv *field.InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *field.InvariantError, got %v", err)
	}

	records, _ := m.ReadTrail(info.SessionID)
	if len(records) != 0 {
		t.Errorf("expected no record for failed evaluation, got %d", len(records))
	}
	got, _ := m.Session(info.SessionID)
	if got.Seq != 0 || got.LockState != model.Active {
		t.Errorf("expected untouched session, got %+v", got)
	}
}

func TestClassifierErrorAbortsBeforeState(t *testing.T) {
	boom := classify.Func(func(context.Context, string) (model.SignalPair, error) {
		return model.SignalPair{}, errors.New("upstream unavailable")
	})
	m := newTestManager(t, boom)
	info, _ := m.Reinitialize()

	if _, err := m.Evaluate(context.Background(), info.SessionID, "text"); err == nil {
		t.Fatal("expected classifier error to surface")
	}
	records, _ := m.ReadTrail(info.SessionID)
	if len(records) != 0 {
		t.Errorf("expected empty trail, got %d records", len(records))
	}
}

func TestUnknownSessionRejected(t *testing.T) {
	m := newTestManager(t, nil)

	_, err := m.Evaluate(context.Background(), "not-a-session", "text")
	if !errors.Is(err, ErrUnknownSession) {
		t.Errorf("expected ErrUnknownSession, got %v", err)
	}
}

func TestReinitializeAlwaysFresh(t *testing.T) {
	m := newTestManager(t, nil)

	a, _ := m.Reinitialize()
	m.Evaluate(context.Background(), a.SessionID, "I am morally perfect")

	b, err := m.Reinitialize()
	if err != nil {
		t.Fatalf("Reinitialize: %v", err)
	}
	if b.SessionID == a.SessionID {
		t.Error("expected a fresh session id")
	}
	if b.LockState != model.Active {
		t.Errorf("expected active, got %s", b.LockState)
	}
	records, _ := m.ReadTrail(b.SessionID)
	if len(records) != 0 {
		t.Errorf("expected empty trail for new session, got %d", len(records))
	}

	// The locked predecessor stays readable and locked.
	old, _ := m.Session(a.SessionID)
	if old.LockState != model.Locked {
		t.Errorf("expected predecessor to stay locked, got %s", old.LockState)
	}
}

func TestDriftAcrossEvaluations(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	// X=0.2: one good keyword.
	first, err := m.Evaluate(context.Background(), info.SessionID, "we should help them")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(first.Field.X-0.2) > 1e-9 {
		t.Fatalf("expected X=0.2, got %g", first.Field.X)
	}

	// X=0.4: two good keywords. Drift = 0.4 − 0.2.
	second, err := m.Evaluate(context.Background(), info.SessionID, "help and protect them")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(second.Drift-0.2) > 1e-9 {
		t.Errorf("expected drift 0.2, got %g", second.Drift)
	}
}

func TestShockCompressesX(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	res, err := m.Evaluate(context.Background(), info.SessionID, "protect our safety no matter the cost")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Shock {
		t.Fatal("expected shock")
	}
	// Two good keywords → raw X=0.4, compressed to 0.2.
	if math.Abs(res.Field.X-0.2) > 1e-9 {
		t.Errorf("expected compressed X=0.2, got %g", res.Field.X)
	}
	if res.SessionState != model.Active {
		t.Errorf("shock alone must not lock, got %s", res.SessionState)
	}
	if len(res.Notes) == 0 {
		t.Error("expected a shock note")
	}
}

func TestSummary(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	m.Evaluate(context.Background(), info.SessionID, "hello world")
	m.Evaluate(context.Background(), info.SessionID, "crush anyone who objects")
	m.Evaluate(context.Background(), info.SessionID, "it is right because i say so")

	s, err := m.Summary(info.SessionID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.Events != 3 {
		t.Errorf("expected 3 events, got %d", s.Events)
	}
	if s.Shocks != 1 {
		t.Errorf("expected 1 shock, got %d", s.Shocks)
	}
	if s.Circularity != 1 {
		t.Errorf("expected 1 circularity warning, got %d", s.Circularity)
	}
	if s.HardLocks != 1 {
		t.Errorf("expected 1 hard lock, got %d", s.HardLocks)
	}
	if s.FinalState != model.Locked {
		t.Errorf("expected locked final status, got %s", s.FinalState)
	}
}

func TestSummaryEmptySession(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	s, err := m.Summary(info.SessionID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.Events != 0 || s.FinalState != model.Active {
		t.Errorf("unexpected empty summary: %+v", s)
	}
}

func TestConcurrentEvaluationsSameSession(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	// Half the submissions carry a locking claim. Exactly one
	// ACTIVE→LOCKED transition may be recorded; everything after it is
	// a rejected self-loop.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		text := "a quiet sentence"
		if i%2 == 0 {
			text = "I am morally perfect"
		}
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			m.Evaluate(context.Background(), info.SessionID, text)
		}(text)
	}
	wg.Wait()

	records, err := m.ReadTrail(info.SessionID)
	if err != nil {
		t.Fatalf("ReadTrail: %v", err)
	}
	transitions := 0
	sawLocked := false
	for _, r := range records {
		if r.Violation.IsLocking() {
			transitions++
			if sawLocked {
				t.Error("violation recorded after lock was committed")
			}
			sawLocked = true
		} else if sawLocked && r.SessionState != model.Locked {
			t.Error("active record after lock was committed")
		}
	}
	if transitions != 1 {
		t.Errorf("expected exactly one ACTIVE→LOCKED transition, got %d", transitions)
	}

	// Seqs are strictly increasing with no duplicates.
	for i := 1; i < len(records); i++ {
		if records[i].Seq != records[i-1].Seq+1 {
			t.Fatalf("non-contiguous seqs: %d then %d", records[i-1].Seq, records[i].Seq)
		}
	}
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	m := newTestManager(t, nil)

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		info, err := m.Reinitialize()
		if err != nil {
			t.Fatalf("Reinitialize: %v", err)
		}
		ids[i] = info.SessionID
	}

	// Cross-session parallelism must never fail an evaluation; the
	// registry serializes its writes internally.
	errs := make(chan error, len(ids)*10)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				text := "plain text"
				if i%2 == 0 && j == 5 {
					text = "i am the standard of morality"
				}
				if _, err := m.Evaluate(context.Background(), id, text); err != nil {
					errs <- err
				}
			}
		}(i, id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Evaluate: %v", err)
	}

	for i, id := range ids {
		info, err := m.Session(id)
		if err != nil {
			t.Fatalf("Session: %v", err)
		}
		want := model.Active
		if i%2 == 0 {
			want = model.Locked
		}
		if info.LockState != want {
			t.Errorf("session %d: expected %s, got %s", i, want, info.LockState)
		}
	}

	// The interleaved chain still verifies.
	result := audit.Verify(m.cfg.TrailPath)
	if !result.Valid {
		t.Errorf("expected valid chain, got error at line %d: %s", result.ErrorLine, result.Error)
	}
}

func TestLockSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		TrailPath: filepath.Join(dir, "trail.jsonl"),
		DBPath:    filepath.Join(dir, "sessions.db"),
	}

	m1, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	info, _ := m1.Reinitialize()
	m1.Evaluate(context.Background(), info.SessionID, "I am morally perfect")
	m1.Close()

	m2, err := New(cfg)
	if err != nil {
		t.Fatalf("New after restart: %v", err)
	}
	defer m2.Close()

	res, err := m2.Evaluate(context.Background(), info.SessionID, "hello again")
	if err != nil {
		t.Fatalf("Evaluate after restart: %v", err)
	}
	if !res.Rejected || res.SessionState != model.Locked {
		t.Errorf("expected fast-reject after restart, got %+v", res)
	}
}

func TestTrailLockOverridesStaleRegistryRow(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		TrailPath: filepath.Join(dir, "trail.jsonl"),
		DBPath:    filepath.Join(dir, "sessions.db"),
	}

	m1, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	info, _ := m1.Reinitialize()
	m1.Close()

	// A locked trail entry whose registry commit never landed, as after
	// a crash or store failure between the two writes. The row still
	// says active.
	tr, err := audit.Open(cfg.TrailPath)
	if err != nil {
		t.Fatalf("audit.Open: %v", err)
	}
	reason := "hard lock: self-declared moral perfection"
	err = tr.Append(audit.Entry{
		SessionID:    info.SessionID,
		Seq:          1,
		Violation:    model.SelfDeclaredPerfection,
		SessionState: model.Locked,
		LockReason:   reason,
	})
	tr.Close()
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	m2, err := New(cfg)
	if err != nil {
		t.Fatalf("New after restart: %v", err)
	}
	defer m2.Close()

	res, err := m2.Evaluate(context.Background(), info.SessionID, "hello again")
	if err != nil {
		t.Fatalf("Evaluate after restart: %v", err)
	}
	if !res.Rejected || res.SessionState != model.Locked {
		t.Fatalf("expected fast-reject from trail state, got %+v", res)
	}
	if res.Seq != 2 {
		t.Errorf("expected seq to continue from the trail, got %d", res.Seq)
	}

	// The restore repaired the registry row.
	got, err := m2.Session(info.SessionID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got.LockState != model.Locked || got.LockReason != reason {
		t.Errorf("expected reconciled registry row, got %+v", got)
	}
}

func TestAuditWriteFailureFailsEvaluation(t *testing.T) {
	m := newTestManager(t, nil)
	info, _ := m.Reinitialize()

	// Prime the handle, then kill the trail file underneath the manager.
	if _, err := m.Evaluate(context.Background(), info.SessionID, "fine"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	m.trail.Close()

	_, err := m.Evaluate(context.Background(), info.SessionID, "also fine")
	if !errors.Is(err, ErrAuditWrite) {
		t.Fatalf("expected ErrAuditWrite, got %v", err)
	}
}

func TestReloadPatternsSwapsDetector(t *testing.T) {
	dir := t.TempDir()
	patternsPath := filepath.Join(dir, "patterns.yaml")
	writeFile(t, patternsPath, "perfection:\n  - i am a paragon\n")

	m, err := New(Config{
		TrailPath:    filepath.Join(dir, "trail.jsonl"),
		DBPath:       filepath.Join(dir, "sessions.db"),
		PatternsPath: patternsPath,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	hashBefore := m.PatternsHash()

	writeFile(t, patternsPath, "perfection:\n  - i am beyond reproach\n")
	if err := m.ReloadPatterns(); err != nil {
		t.Fatalf("ReloadPatterns: %v", err)
	}
	if m.PatternsHash() == hashBefore {
		t.Error("expected patterns hash to change after reload")
	}

	info, _ := m.Reinitialize()
	res, err := m.Evaluate(context.Background(), info.SessionID, "I am beyond reproach")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Violation != model.SelfDeclaredPerfection {
		t.Errorf("expected reloaded pattern to match, got %s", res.Violation)
	}
}
