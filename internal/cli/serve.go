package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/server"
)

var (
	servePort     int
	serveTrail    string
	serveDB       string
	servePatterns string
	serveLexicon  string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 50051, "gRPC listen port")
	serveCmd.Flags().StringVar(&serveTrail, "trail", defaultTrailPath(), "Path to audit trail JSONL")
	serveCmd.Flags().StringVar(&serveDB, "db", defaultDBPath(), "Path to session registry database")
	serveCmd.Flags().StringVar(&servePatterns, "patterns", defaultPatternsPath(), "Path to violation patterns YAML")
	serveCmd.Flags().StringVar(&serveLexicon, "lexicon", defaultLexiconPath(), "Path to classifier lexicon YAML")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start gRPC evaluation server",
	Long:  "Runs moralwatch as a central evaluation server over gRPC.\nMultiple callers connect as clients for remote evaluation.\nSupports hot-reload of pattern and lexicon files.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.Config{
		Port:         servePort,
		TrailPath:    serveTrail,
		DBPath:       serveDB,
		PatternsPath: servePatterns,
		LexiconPath:  serveLexicon,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer srv.Close()

	// Start hot-reload watcher for pattern and lexicon files
	watchPaths := []string{servePatterns, serveLexicon}
	reloader, err := server.NewReloader(srv, watchPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: hot-reload disabled: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if reloader != nil {
		go reloader.Run(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down evaluation server...")
		cancel()
		srv.GracefulStop()
	}()

	fmt.Fprintf(os.Stderr, "moralwatch evaluation server listening on :%d\n", servePort)
	fmt.Fprintf(os.Stderr, "Trail: %s\n", serveTrail)
	fmt.Fprintf(os.Stderr, "Patterns: %s (hot-reload enabled)\n", servePatterns)
	fmt.Fprintln(os.Stderr)

	return srv.Serve()
}
