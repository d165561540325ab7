package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/client"
	"github.com/ppiankov/moralwatch/internal/model"
	"github.com/ppiankov/moralwatch/internal/session"
)

var (
	evalSession  string
	evalAddr     string
	evalTrail    string
	evalDB       string
	evalPatterns string
	evalLexicon  string
	evalFormat   string
)

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalSession, "session", "", "Session ID (created if empty)")
	evalCmd.Flags().StringVar(&evalAddr, "addr", "", "Remote gRPC server address (local engine if empty)")
	evalCmd.Flags().StringVar(&evalTrail, "trail", defaultTrailPath(), "Path to audit trail JSONL")
	evalCmd.Flags().StringVar(&evalDB, "db", defaultDBPath(), "Path to session registry database")
	evalCmd.Flags().StringVar(&evalPatterns, "patterns", defaultPatternsPath(), "Path to violation patterns YAML")
	evalCmd.Flags().StringVar(&evalLexicon, "lexicon", defaultLexiconPath(), "Path to classifier lexicon YAML")
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "text", "Output format (text|json)")
}

var evalCmd = &cobra.Command{
	Use:   "eval <text>...",
	Short: "Evaluate one input text",
	Long:  "Scores the text, records it to the audit trail, and prints the field state.\nIf the session is locked the input is rejected without scoring.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	ctx := context.Background()

	if evalAddr != "" {
		c, err := client.New(evalAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		sessionID := evalSession
		if sessionID == "" {
			info, err := c.Reinitialize(ctx)
			if err != nil {
				return err
			}
			sessionID = info.SessionID
			fmt.Printf("session: %s\n", sessionID)
		}
		result, err := c.Evaluate(ctx, sessionID, text)
		if err != nil {
			return err
		}
		return printResult(result)
	}

	mgr, err := session.New(session.Config{
		TrailPath:    evalTrail,
		DBPath:       evalDB,
		PatternsPath: evalPatterns,
		LexiconPath:  evalLexicon,
	})
	if err != nil {
		return err
	}
	defer mgr.Close()

	sessionID := evalSession
	if sessionID == "" {
		info, err := mgr.Reinitialize()
		if err != nil {
			return err
		}
		sessionID = info.SessionID
		fmt.Printf("session: %s\n", sessionID)
	}

	result, err := mgr.Evaluate(ctx, sessionID, text)
	if err != nil {
		return err
	}
	return printResult(result)
}

func printResult(r model.EvaluationResult) error {
	if evalFormat == "json" {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if r.Rejected {
		fmt.Printf("REJECTED: session is locked (%s)\n", r.LockReason)
		return nil
	}

	fmt.Printf("PG=%.4f PE=%.4f D=%+.4f X=%.4f drift=%+.4f\n",
		r.Field.PG, r.Field.PE, r.Field.D, r.Field.X, r.Drift)
	for _, note := range r.Notes {
		fmt.Printf("  note: %s\n", note)
	}
	if r.Violation.IsLocking() {
		fmt.Printf("HARD LOCK: %s\n", r.Violation)
		fmt.Printf("  %s\n", r.LockReason)
	}
	return nil
}
