package audit

import (
	"path/filepath"
	"testing"

	"github.com/ppiankov/moralwatch/internal/model"
)

func BenchmarkAppend_Single(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.jsonl")
	tr, err := Open(path)
	if err != nil {
		b.Fatal(err)
	}
	defer tr.Close()

	entry := Entry{
		SessionID:    "sess-bench",
		InputSHA256:  "sha256:bench",
		Field:        model.FieldState{PG: 0.6, PE: 0.4, D: 0.2, X: 0.2},
		Violation:    model.ViolationNone,
		SessionState: model.Active,
		PatternsHash: "sha256:bench",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Append(entry)
	}
}

func BenchmarkVerify_1K(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench-verify.jsonl")
	tr, err := Open(path)
	if err != nil {
		b.Fatal(err)
	}
	entry := Entry{
		SessionID:    "sess-bench",
		Violation:    model.ViolationNone,
		SessionState: model.Active,
	}
	for i := 0; i < 1000; i++ {
		tr.Append(entry)
	}
	tr.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := Verify(path); !r.Valid {
			b.Fatalf("invalid chain: %s", r.Error)
		}
	}
}
