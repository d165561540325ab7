package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/moralwatch/internal/classify"
	"github.com/ppiankov/moralwatch/internal/detect"
	"github.com/ppiankov/moralwatch/internal/integrity"
)

var (
	initMode     string
	initForce    bool
	initChecksum bool
)

func init() {
	initCmd.Flags().StringVar(&initMode, "mode", "user", "Config location: user (~/.moralwatch) or system (/etc/moralwatch)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config files")
	initCmd.Flags().BoolVar(&initChecksum, "write-checksum", false, "Write the running binary's SHA-256 for startup integrity checks")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap moralwatch configuration",
	Long: `Creates the config directory with default violation patterns and
classifier lexicon.

User mode (default):  writes to ~/.moralwatch/
System mode:          writes to /etc/moralwatch/ (requires root)

With --write-checksum: records the running binary's SHA-256 so startup
integrity verification can detect tampering.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := initConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var created []string

	patternsPath := filepath.Join(dir, "patterns.yaml")
	patternsContent, err := yaml.Marshal(detect.DefaultPatterns)
	if err != nil {
		return fmt.Errorf("generate default patterns: %w", err)
	}
	if wrote, err := writeIfMissing(patternsPath, string(patternsContent)); err != nil {
		return err
	} else if wrote {
		created = append(created, patternsPath)
	}

	lexiconPath := filepath.Join(dir, "lexicon.yaml")
	lexiconContent, err := yaml.Marshal(classify.DefaultLexicon)
	if err != nil {
		return fmt.Errorf("generate default lexicon: %w", err)
	}
	if wrote, err := writeIfMissing(lexiconPath, string(lexiconContent)); err != nil {
		return err
	} else if wrote {
		created = append(created, lexiconPath)
	}

	if initChecksum {
		hash, err := integrity.HashSelf()
		if err != nil {
			return fmt.Errorf("hash binary: %w", err)
		}
		checksumPath := filepath.Join(dir, "binary.sha256")
		if err := os.WriteFile(checksumPath, []byte(hash+"\n"), 0o600); err != nil {
			return fmt.Errorf("write checksum: %w", err)
		}
		created = append(created, checksumPath)
	}

	if len(created) == 0 {
		fmt.Println("Nothing to do; config already exists (use --force to overwrite)")
		return nil
	}
	for _, p := range created {
		fmt.Printf("created %s\n", p)
	}
	return nil
}

func initConfigDir() (string, error) {
	switch initMode {
	case "user":
		return configDir(), nil
	case "system":
		return "/etc/moralwatch", nil
	default:
		return "", fmt.Errorf("invalid mode %q (want user or system)", initMode)
	}
}

// writeIfMissing writes content unless the file exists and --force is unset.
func writeIfMissing(path, content string) (bool, error) {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
