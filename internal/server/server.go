package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/ppiankov/moralwatch/api/proto/moralwatch/v1"
	"github.com/ppiankov/moralwatch/internal/audit"
	"github.com/ppiankov/moralwatch/internal/field"
	"github.com/ppiankov/moralwatch/internal/model"
	"github.com/ppiankov/moralwatch/internal/session"
)

// Config holds gRPC server configuration.
type Config struct {
	Port         int
	TrailPath    string
	DBPath       string
	PatternsPath string
	LexiconPath  string
	Epsilon      float64
}

// Server implements the MoralwatchService gRPC server.
type Server struct {
	pb.UnimplementedMoralwatchServiceServer

	mgr *session.Manager
	cfg Config

	grpcServer *grpc.Server
}

// New creates a gRPC server backed by a session manager.
func New(cfg Config) (*Server, error) {
	mgr, err := session.New(session.Config{
		TrailPath:    cfg.TrailPath,
		DBPath:       cfg.DBPath,
		PatternsPath: cfg.PatternsPath,
		LexiconPath:  cfg.LexiconPath,
		Epsilon:      cfg.Epsilon,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %w", err)
	}

	s := &Server{
		mgr:        mgr,
		cfg:        cfg,
		grpcServer: grpc.NewServer(),
	}

	pb.RegisterMoralwatchServiceServer(s.grpcServer, s)
	return s, nil
}

// Serve starts the gRPC server on the configured port. Blocks until stopped.
func (s *Server) Serve() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.cfg.Port, err)
	}
	return s.grpcServer.Serve(lis)
}

// ServeOn starts the gRPC server on the given listener. For testing.
func (s *Server) ServeOn(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop gracefully shuts down the gRPC server.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// Close cleans up resources.
func (s *Server) Close() error {
	return s.mgr.Close()
}

// Evaluate implements the Evaluate RPC.
func (s *Server) Evaluate(ctx context.Context, req *pb.EvalRequest) (*pb.EvalResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "missing session_id")
	}

	res, err := s.mgr.Evaluate(ctx, req.SessionId, req.Text)
	if err != nil {
		return nil, rpcError(err)
	}

	notes := make([]string, len(res.Notes))
	copy(notes, res.Notes)

	return &pb.EvalResponse{
		SessionId:    res.SessionID,
		Seq:          uint64(res.Seq),
		Field:        fieldToProto(res.Field),
		Drift:        res.Drift,
		Shock:        res.Shock,
		Violation:    string(res.Violation),
		SessionState: string(res.SessionState),
		Rejected:     res.Rejected,
		LockReason:   res.LockReason,
		Notes:        notes,
	}, nil
}

// Reinitialize implements the Reinitialize RPC.
func (s *Server) Reinitialize(ctx context.Context, req *pb.ReinitRequest) (*pb.ReinitResponse, error) {
	info, err := s.mgr.Reinitialize()
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.ReinitResponse{
		SessionId: info.SessionID,
		LockState: string(info.LockState),
		CreatedAt: info.CreatedAt.Format(audit.TimestampFormat),
	}, nil
}

// ReadTrail implements the ReadTrail RPC.
func (s *Server) ReadTrail(ctx context.Context, req *pb.ReadTrailRequest) (*pb.ReadTrailResponse, error) {
	records, err := s.mgr.ReadTrail(req.SessionId)
	if err != nil {
		return nil, rpcError(err)
	}

	out := make([]*pb.TrailRecord, len(records))
	for i, r := range records {
		out[i] = &pb.TrailRecord{
			SessionId:    r.SessionID,
			Seq:          uint64(r.Seq),
			Timestamp:    r.Timestamp,
			InputSha256:  r.InputSHA256,
			Field:        fieldToProto(r.Field),
			Drift:        r.Drift,
			Shock:        r.Shock,
			Violation:    string(r.Violation),
			SessionState: string(r.SessionState),
			LockReason:   r.LockReason,
			Notes:        r.Notes,
		}
	}
	return &pb.ReadTrailResponse{Records: out}, nil
}

// Summary implements the Summary RPC.
func (s *Server) Summary(ctx context.Context, req *pb.SummaryRequest) (*pb.SummaryResponse, error) {
	sum, err := s.mgr.Summary(req.SessionId)
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.SummaryResponse{
		SessionId:           sum.SessionID,
		EventsAnalyzed:      int64(sum.Events),
		Shocks:              int64(sum.Shocks),
		CircularityWarnings: int64(sum.Circularity),
		HardLocks:           int64(sum.HardLocks),
		MeanDrift:           sum.MeanDrift,
		FinalX:              sum.FinalX,
		FinalStatus:         string(sum.FinalState),
	}, nil
}

// ListSessions implements the ListSessions RPC.
func (s *Server) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.ListSessionsResponse, error) {
	sessions, err := s.mgr.Sessions()
	if err != nil {
		return nil, rpcError(err)
	}

	out := make([]*pb.SessionInfo, len(sessions))
	for i, info := range sessions {
		pi := &pb.SessionInfo{
			SessionId:  info.SessionID,
			LockState:  string(info.LockState),
			LockReason: info.LockReason,
			CreatedAt:  info.CreatedAt.Format(audit.TimestampFormat),
			Seq:        uint64(info.Seq),
		}
		if !info.LockedAt.IsZero() {
			pi.LockedAt = info.LockedAt.Format(audit.TimestampFormat)
		}
		out[i] = pi
	}
	return &pb.ListSessionsResponse{Sessions: out}, nil
}

// ReloadPatterns atomically swaps the detector configuration.
// Called by the hot-reloader on file change.
func (s *Server) ReloadPatterns() error {
	return s.mgr.ReloadPatterns()
}

func fieldToProto(f model.FieldState) *pb.FieldState {
	return &pb.FieldState{Pg: f.PG, Pe: f.PE, D: f.D, X: f.X}
}

// rpcError maps engine errors to gRPC status codes.
func rpcError(err error) error {
	var inv *field.InvariantError
	switch {
	case errors.Is(err, session.ErrUnknownSession):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &inv):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, session.ErrAuditWrite):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
