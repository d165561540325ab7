package mcp

import (
	"context"
	"path/filepath"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		TrailPath: filepath.Join(dir, "trail.jsonl"),
		DBPath:    filepath.Join(dir, "sessions.db"),
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create MCP server: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEvaluateTool(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, reinit, err := s.handleReinit(ctx, &mcpsdk.CallToolRequest{}, ReinitInput{})
	if err != nil {
		t.Fatalf("reinit: %v", err)
	}
	if reinit.LockState != "active" {
		t.Fatalf("expected active, got %q", reinit.LockState)
	}

	result, out, err := s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
		SessionID: reinit.SessionID,
		Text:      "we should help and protect people",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil && result.IsError {
		t.Fatal("expected success, got error result")
	}
	if out.Violation != "none" {
		t.Fatalf("expected none, got %q", out.Violation)
	}
	if out.Field.X == 0 {
		t.Fatal("expected nonzero X for good-leaning text")
	}
}

func TestEvaluateToolLocksAndRejects(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, reinit, _ := s.handleReinit(ctx, &mcpsdk.CallToolRequest{}, ReinitInput{})

	_, out, err := s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
		SessionID: reinit.SessionID,
		Text:      "I am morally perfect",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionState != "locked" || out.Violation != "self_declared_perfection" {
		t.Fatalf("expected lock, got %+v", out)
	}

	result, out, err := s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
		SessionID: reinit.SessionID,
		Text:      "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected IsError result for locked session")
	}
	if !out.Rejected {
		t.Fatal("expected rejected=true")
	}
}

func TestEvaluateToolUnknownSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	result, _, err := s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
		SessionID: "missing",
		Text:      "text",
	})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if result == nil || !result.IsError {
		t.Fatal("expected IsError result")
	}
}

func TestTrailAndSummaryTools(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, reinit, _ := s.handleReinit(ctx, &mcpsdk.CallToolRequest{}, ReinitInput{})
	for _, text := range []string{"hello", "i am the standard of morality"} {
		if _, _, err := s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
			SessionID: reinit.SessionID,
			Text:      text,
		}); err != nil {
			t.Fatalf("evaluate: %v", err)
		}
	}

	_, trail, err := s.handleTrail(ctx, &mcpsdk.CallToolRequest{}, TrailInput{SessionID: reinit.SessionID})
	if err != nil {
		t.Fatalf("trail: %v", err)
	}
	if len(trail.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(trail.Records))
	}
	if trail.Records[1].Violation != "circular_moral_authority" {
		t.Fatalf("unexpected violation: %q", trail.Records[1].Violation)
	}

	_, sum, err := s.handleSummary(ctx, &mcpsdk.CallToolRequest{}, SummaryInput{SessionID: reinit.SessionID})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Events != 2 || sum.HardLocks != 1 || sum.FinalStatus != "locked" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestVerifyTool(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, reinit, _ := s.handleReinit(ctx, &mcpsdk.CallToolRequest{}, ReinitInput{})
	s.handleEvaluate(ctx, &mcpsdk.CallToolRequest{}, EvaluateInput{
		SessionID: reinit.SessionID,
		Text:      "hello",
	})

	result, out, err := s.handleVerify(ctx, &mcpsdk.CallToolRequest{}, VerifyInput{})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if result != nil && result.IsError {
		t.Fatal("expected valid chain")
	}
	if !out.Valid || out.Lines != 1 {
		t.Fatalf("unexpected verify output: %+v", out)
	}
}
