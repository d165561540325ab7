package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ppiankov/moralwatch/api/proto/moralwatch/v1"
	"github.com/ppiankov/moralwatch/internal/audit"
	"github.com/ppiankov/moralwatch/internal/model"
)

// Client connects to a moralwatch gRPC evaluation server.
type Client struct {
	conn   *grpc.ClientConn
	client pb.MoralwatchServiceClient
}

// New creates a gRPC client connected to the given address.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to evaluation server: %w", err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewMoralwatchServiceClient(conn),
	}, nil
}

// Evaluate sends one input text to the remote server for evaluation.
func (c *Client) Evaluate(ctx context.Context, sessionID, text string) (model.EvaluationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.client.Evaluate(ctx, &pb.EvalRequest{
		SessionId: sessionID,
		Text:      text,
	})
	if err != nil {
		return model.EvaluationResult{}, err
	}

	return model.EvaluationResult{
		SessionID:    resp.SessionId,
		Seq:          int(resp.Seq),
		Field:        protoToField(resp.Field),
		Drift:        resp.Drift,
		Shock:        resp.Shock,
		Violation:    model.Violation(resp.Violation),
		SessionState: model.LockState(resp.SessionState),
		Rejected:     resp.Rejected,
		LockReason:   resp.LockReason,
		Notes:        resp.Notes,
	}, nil
}

// Reinitialize creates a fresh session on the remote server.
func (c *Client) Reinitialize(ctx context.Context) (model.SessionInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.client.Reinitialize(ctx, &pb.ReinitRequest{})
	if err != nil {
		return model.SessionInfo{}, err
	}

	createdAt, _ := time.Parse(audit.TimestampFormat, resp.CreatedAt)
	return model.SessionInfo{
		SessionID: resp.SessionId,
		LockState: model.LockState(resp.LockState),
		CreatedAt: createdAt,
	}, nil
}

// ReadTrail fetches the audit records for a session.
func (c *Client) ReadTrail(ctx context.Context, sessionID string) ([]model.EvaluationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.client.ReadTrail(ctx, &pb.ReadTrailRequest{SessionId: sessionID})
	if err != nil {
		return nil, err
	}

	records := make([]model.EvaluationRecord, len(resp.Records))
	for i, r := range resp.Records {
		records[i] = model.EvaluationRecord{
			SessionID:    r.SessionId,
			Seq:          int(r.Seq),
			Timestamp:    r.Timestamp,
			InputSHA256:  r.InputSha256,
			Field:        protoToField(r.Field),
			Drift:        r.Drift,
			Shock:        r.Shock,
			Violation:    model.Violation(r.Violation),
			SessionState: model.LockState(r.SessionState),
			LockReason:   r.LockReason,
			Notes:        r.Notes,
		}
	}
	return records, nil
}

// Summary fetches the aggregated view of a session's trail.
func (c *Client) Summary(ctx context.Context, sessionID string) (model.SessionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.client.Summary(ctx, &pb.SummaryRequest{SessionId: sessionID})
	if err != nil {
		return model.SessionSummary{}, err
	}

	return model.SessionSummary{
		SessionID:   resp.SessionId,
		Events:      int(resp.EventsAnalyzed),
		Shocks:      int(resp.Shocks),
		Circularity: int(resp.CircularityWarnings),
		HardLocks:   int(resp.HardLocks),
		MeanDrift:   resp.MeanDrift,
		FinalX:      resp.FinalX,
		FinalState:  model.LockState(resp.FinalStatus),
	}, nil
}

// ListSessions fetches known sessions, newest first.
func (c *Client) ListSessions(ctx context.Context) ([]model.SessionInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.client.ListSessions(ctx, &pb.ListSessionsRequest{})
	if err != nil {
		return nil, err
	}

	sessions := make([]model.SessionInfo, len(resp.Sessions))
	for i, s := range resp.Sessions {
		createdAt, _ := time.Parse(audit.TimestampFormat, s.CreatedAt)
		info := model.SessionInfo{
			SessionID:  s.SessionId,
			LockState:  model.LockState(s.LockState),
			LockReason: s.LockReason,
			CreatedAt:  createdAt,
			Seq:        int(s.Seq),
		}
		if s.LockedAt != "" {
			info.LockedAt, _ = time.Parse(audit.TimestampFormat, s.LockedAt)
		}
		sessions[i] = info
	}
	return sessions, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func protoToField(f *pb.FieldState) model.FieldState {
	if f == nil {
		return model.FieldState{}
	}
	return model.FieldState{PG: f.Pg, PE: f.Pe, D: f.D, X: f.X}
}
