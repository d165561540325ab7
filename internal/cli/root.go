package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/integrity"
)

var rootCmd = &cobra.Command{
	Use:   "moralwatch",
	Short: "Content evaluation engine with an irreversible hard lock",
	Long:  "Scores text along a conserved two-signal moral field and detects self-referential\nmoral authority claims. A detected claim locks the session permanently;\nevery evaluation is written to a hash-chained audit trail first.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := integrity.Verify(); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
			os.Exit(78) // EX_CONFIG
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configDir resolves the per-user config directory, ~/.moralwatch.
func configDir() string {
	if dir := os.Getenv("MORALWATCH_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moralwatch"
	}
	return filepath.Join(home, ".moralwatch")
}

func defaultTrailPath() string {
	return filepath.Join(configDir(), "trail.jsonl")
}

func defaultDBPath() string {
	return filepath.Join(configDir(), "sessions.db")
}

func defaultPatternsPath() string {
	return filepath.Join(configDir(), "patterns.yaml")
}

func defaultLexiconPath() string {
	return filepath.Join(configDir(), "lexicon.yaml")
}
