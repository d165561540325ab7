package mcp

import (
	"context"
	"errors"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/moralwatch/internal/audit"
	"github.com/ppiankov/moralwatch/internal/session"
)

// --- Input/Output types ---

// EvaluateInput defines parameters for the moralwatch_evaluate tool.
type EvaluateInput struct {
	SessionID string `json:"session_id" jsonschema:"session to evaluate under"`
	Text      string `json:"text" jsonschema:"input text to score"`
}

// FieldOutput is the conserved dominance field for one evaluation.
type FieldOutput struct {
	PG float64 `json:"pg"`
	PE float64 `json:"pe"`
	D  float64 `json:"d"`
	X  float64 `json:"x"`
}

// EvaluateOutput contains the evaluation result or rejection details.
type EvaluateOutput struct {
	SessionID    string      `json:"session_id"`
	Seq          int         `json:"seq"`
	Field        FieldOutput `json:"field"`
	Drift        float64     `json:"drift"`
	Shock        bool        `json:"shock,omitempty"`
	Violation    string      `json:"violation"`
	SessionState string      `json:"session_state"`
	Rejected     bool        `json:"rejected,omitempty"`
	LockReason   string      `json:"lock_reason,omitempty"`
	Notes        []string    `json:"notes,omitempty"`
}

// ReinitInput is empty — no parameters needed.
type ReinitInput struct{}

// ReinitOutput identifies the fresh session.
type ReinitOutput struct {
	SessionID string `json:"session_id"`
	LockState string `json:"lock_state"`
}

// TrailInput defines parameters for the moralwatch_trail tool.
type TrailInput struct {
	SessionID string `json:"session_id" jsonschema:"session whose trail to read"`
}

// TrailItem is one audit record.
type TrailItem struct {
	Seq          int         `json:"seq"`
	Timestamp    string      `json:"ts"`
	InputSHA256  string      `json:"input_sha256"`
	Field        FieldOutput `json:"field"`
	Drift        float64     `json:"drift"`
	Shock        bool        `json:"shock,omitempty"`
	Violation    string      `json:"violation"`
	SessionState string      `json:"session_state"`
	LockReason   string      `json:"lock_reason,omitempty"`
	Notes        []string    `json:"notes,omitempty"`
}

// TrailOutput lists a session's audit records in order.
type TrailOutput struct {
	SessionID string      `json:"session_id"`
	Records   []TrailItem `json:"records"`
}

// SummaryInput defines parameters for the moralwatch_summary tool.
type SummaryInput struct {
	SessionID string `json:"session_id" jsonschema:"session to summarize"`
}

// SummaryOutput aggregates a session's trail.
type SummaryOutput struct {
	SessionID   string  `json:"session_id"`
	Events      int     `json:"events_analyzed"`
	Shocks      int     `json:"shocks"`
	Circularity int     `json:"circularity_warnings"`
	HardLocks   int     `json:"hard_locks"`
	MeanDrift   float64 `json:"mean_drift"`
	FinalX      float64 `json:"final_x"`
	FinalStatus string  `json:"final_status"`
}

// VerifyInput is empty; verification covers the whole trail file.
type VerifyInput struct{}

// VerifyOutput reports hash chain integrity.
type VerifyOutput struct {
	Valid     bool   `json:"valid"`
	Lines     int    `json:"lines"`
	Error     string `json:"error,omitempty"`
	ErrorLine int    `json:"error_line,omitempty"`
}

// --- Handlers ---

func (s *Server) handleEvaluate(ctx context.Context, req *mcpsdk.CallToolRequest, input EvaluateInput) (*mcpsdk.CallToolResult, EvaluateOutput, error) {
	result, err := s.mgr.Evaluate(ctx, input.SessionID, input.Text)
	if err != nil {
		if errors.Is(err, session.ErrUnknownSession) {
			return &mcpsdk.CallToolResult{IsError: true}, EvaluateOutput{}, err
		}
		return nil, EvaluateOutput{}, err
	}

	out := EvaluateOutput{
		SessionID:    result.SessionID,
		Seq:          result.Seq,
		Field:        FieldOutput{PG: result.Field.PG, PE: result.Field.PE, D: result.Field.D, X: result.Field.X},
		Drift:        result.Drift,
		Shock:        result.Shock,
		Violation:    string(result.Violation),
		SessionState: string(result.SessionState),
		Rejected:     result.Rejected,
		LockReason:   result.LockReason,
		Notes:        result.Notes,
	}
	if result.Rejected {
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}
	return nil, out, nil
}

func (s *Server) handleReinit(ctx context.Context, req *mcpsdk.CallToolRequest, input ReinitInput) (*mcpsdk.CallToolResult, ReinitOutput, error) {
	info, err := s.mgr.Reinitialize()
	if err != nil {
		return nil, ReinitOutput{}, err
	}
	return nil, ReinitOutput{
		SessionID: info.SessionID,
		LockState: string(info.LockState),
	}, nil
}

func (s *Server) handleTrail(ctx context.Context, req *mcpsdk.CallToolRequest, input TrailInput) (*mcpsdk.CallToolResult, TrailOutput, error) {
	records, err := s.mgr.ReadTrail(input.SessionID)
	if err != nil {
		return nil, TrailOutput{}, err
	}

	items := make([]TrailItem, len(records))
	for i, r := range records {
		items[i] = TrailItem{
			Seq:          r.Seq,
			Timestamp:    r.Timestamp,
			InputSHA256:  r.InputSHA256,
			Field:        FieldOutput{PG: r.Field.PG, PE: r.Field.PE, D: r.Field.D, X: r.Field.X},
			Drift:        r.Drift,
			Shock:        r.Shock,
			Violation:    string(r.Violation),
			SessionState: string(r.SessionState),
			LockReason:   r.LockReason,
			Notes:        r.Notes,
		}
	}
	return nil, TrailOutput{SessionID: input.SessionID, Records: items}, nil
}

func (s *Server) handleSummary(ctx context.Context, req *mcpsdk.CallToolRequest, input SummaryInput) (*mcpsdk.CallToolResult, SummaryOutput, error) {
	sum, err := s.mgr.Summary(input.SessionID)
	if err != nil {
		return nil, SummaryOutput{}, err
	}
	return nil, SummaryOutput{
		SessionID:   sum.SessionID,
		Events:      sum.Events,
		Shocks:      sum.Shocks,
		Circularity: sum.Circularity,
		HardLocks:   sum.HardLocks,
		MeanDrift:   sum.MeanDrift,
		FinalX:      sum.FinalX,
		FinalStatus: string(sum.FinalState),
	}, nil
}

func (s *Server) handleVerify(ctx context.Context, req *mcpsdk.CallToolRequest, input VerifyInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	result := audit.Verify(s.cfg.TrailPath)
	out := VerifyOutput{
		Valid:     result.Valid,
		Lines:     result.Lines,
		Error:     result.Error,
		ErrorLine: result.ErrorLine,
	}
	if !result.Valid {
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}
	return nil, out, nil
}
