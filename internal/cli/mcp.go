package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	moralmcp "github.com/ppiankov/moralwatch/internal/mcp"
)

var (
	mcpTrail    string
	mcpDB       string
	mcpPatterns string
	mcpLexicon  string
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpTrail, "trail", defaultTrailPath(), "Path to audit trail JSONL")
	mcpCmd.Flags().StringVar(&mcpDB, "db", defaultDBPath(), "Path to session registry database")
	mcpCmd.Flags().StringVar(&mcpPatterns, "patterns", defaultPatternsPath(), "Path to violation patterns YAML")
	mcpCmd.Flags().StringVar(&mcpLexicon, "lexicon", defaultLexiconPath(), "Path to classifier lexicon YAML")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long:  "Runs moralwatch as an MCP (Model Context Protocol) server over stdio.\nExposes tools: evaluate, reinit, trail, summary, verify.",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := moralmcp.Config{
		TrailPath:    mcpTrail,
		DBPath:       mcpDB,
		PatternsPath: mcpPatterns,
		LexiconPath:  mcpLexicon,
	}

	srv, err := moralmcp.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "moralwatch MCP server running on stdio")
	fmt.Fprintln(os.Stderr)

	return srv.Run(ctx)
}
