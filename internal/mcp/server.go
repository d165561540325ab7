package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/moralwatch/internal/session"
)

// Config holds MCP server configuration.
type Config struct {
	TrailPath    string
	DBPath       string
	PatternsPath string
	LexiconPath  string
	Epsilon      float64
}

// Server wraps the MCP SDK server around the evaluation engine.
type Server struct {
	mcpServer *mcpsdk.Server
	mgr       *session.Manager
	cfg       Config
}

// New creates an MCP server with a loaded session manager and tools.
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
		mgr: mgr,
		cfg: cfg,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "moralwatch",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the session manager.
func (s *Server) Close() error {
	return s.mgr.Close()
}

// registerTools adds all moralwatch tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "moralwatch_evaluate",
		Description: "Evaluate one text against the moral dominance field. Returns the field state, drift, any violation, and the session lock state. Locked sessions reject the input.",
	}, s.handleEvaluate)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "moralwatch_reinit",
		Description: "Create a fresh ACTIVE session. The only recovery from a hard lock; the locked session stays locked under its old ID.",
	}, s.handleReinit)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "moralwatch_trail",
		Description: "Read the append-only audit trail for a session, in evaluation order.",
	}, s.handleTrail)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "moralwatch_summary",
		Description: "Aggregate a session's trail: events, shocks, circularity warnings, hard locks, mean drift, final state.",
	}, s.handleSummary)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "moralwatch_verify",
		Description: "Verify the audit trail hash chain and report the first broken link, if any.",
	}, s.handleVerify)
}
