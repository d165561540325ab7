package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/audit"
)

var trailPath string

func init() {
	rootCmd.AddCommand(trailCmd)
	trailCmd.Flags().StringVar(&trailPath, "trail", defaultTrailPath(), "Path to audit trail JSONL")
}

var trailCmd = &cobra.Command{
	Use:   "trail [session-id]",
	Short: "Read the audit trail",
	Long:  "Prints audit records in evaluation order. With a session ID, only that\nsession's records; without, the whole trail.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTrail,
}

func runTrail(cmd *cobra.Command, args []string) error {
	sessionID := ""
	if len(args) == 1 {
		sessionID = args[0]
	}

	entries, err := audit.Read(trailPath, sessionID)
	if err != nil {
		return fmt.Errorf("read trail: %w", err)
	}

	for _, e := range entries {
		out, _ := json.Marshal(e)
		fmt.Println(string(out))
	}
	return nil
}
