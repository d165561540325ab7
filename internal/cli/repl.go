package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/session"
)

var (
	replTrail    string
	replDB       string
	replPatterns string
	replLexicon  string
)

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replTrail, "trail", defaultTrailPath(), "Path to audit trail JSONL")
	replCmd.Flags().StringVar(&replDB, "db", defaultDBPath(), "Path to session registry database")
	replCmd.Flags().StringVar(&replPatterns, "patterns", defaultPatternsPath(), "Path to violation patterns YAML")
	replCmd.Flags().StringVar(&replLexicon, "lexicon", defaultLexiconPath(), "Path to classifier lexicon YAML")
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive evaluation loop",
	Long:  "Creates a fresh session and evaluates each line of input.\nType 'exit' or 'quit' to stop; a session summary prints on exit.\nA hard lock does not end the loop, but every further input is rejected.",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	mgr, err := session.New(session.Config{
		TrailPath:    replTrail,
		DBPath:       replDB,
		PatternsPath: replPatterns,
		LexiconPath:  replLexicon,
	})
	if err != nil {
		return err
	}
	defer mgr.Close()

	info, err := mgr.Reinitialize()
	if err != nil {
		return err
	}
	fmt.Printf("session %s (type 'exit' to stop)\n\n", info.SessionID)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		result, err := mgr.Evaluate(ctx, info.SessionID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		if result.Rejected {
			fmt.Printf("REJECTED: session is locked (%s)\n", result.LockReason)
			continue
		}

		fmt.Printf("PG=%.4f PE=%.4f D=%+.4f X=%.4f drift=%+.4f\n",
			result.Field.PG, result.Field.PE, result.Field.D, result.Field.X, result.Drift)
		for _, note := range result.Notes {
			fmt.Printf("  note: %s\n", note)
		}
		if result.Violation.IsLocking() {
			fmt.Println()
			fmt.Println("========== HARD LOCK ==========")
			fmt.Printf("  violation: %s\n", result.Violation)
			fmt.Printf("  %s\n", result.LockReason)
			fmt.Println("  session is permanently locked; reinitialize for a fresh one")
			fmt.Println("===============================")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	sum, err := mgr.Summary(info.SessionID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("session summary")
	fmt.Printf("  events analyzed:      %d\n", sum.Events)
	fmt.Printf("  shocks:               %d\n", sum.Shocks)
	fmt.Printf("  circularity warnings: %d\n", sum.Circularity)
	fmt.Printf("  hard locks:           %d\n", sum.HardLocks)
	fmt.Printf("  mean drift:           %+.4f\n", sum.MeanDrift)
	fmt.Printf("  final X:              %.4f\n", sum.FinalX)
	fmt.Printf("  final status:         %s\n", sum.FinalState)
	return nil
}
