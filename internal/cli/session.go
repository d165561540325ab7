package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/moralwatch/internal/session"
)

var (
	sessionTrail    string
	sessionDB       string
	sessionPatterns string
	sessionLexicon  string
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionSummaryCmd)
	sessionCmd.PersistentFlags().StringVar(&sessionTrail, "trail", defaultTrailPath(), "Path to audit trail JSONL")
	sessionCmd.PersistentFlags().StringVar(&sessionDB, "db", defaultDBPath(), "Path to session registry database")
	sessionCmd.PersistentFlags().StringVar(&sessionPatterns, "patterns", defaultPatternsPath(), "Path to violation patterns YAML")
	sessionCmd.PersistentFlags().StringVar(&sessionLexicon, "lexicon", defaultLexiconPath(), "Path to classifier lexicon YAML")
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Session operations",
	Long:  "Commands for creating and inspecting evaluation sessions.",
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a fresh ACTIVE session",
	Long:  "Reinitializes: creates a new session with a fresh ID and empty trail.\nThe only recovery from a hard lock. Locked sessions stay locked.",
	RunE:  runSessionNew,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's lock state",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known sessions, newest first",
	RunE:  runSessionList,
}

var sessionSummaryCmd = &cobra.Command{
	Use:   "summary <session-id>",
	Short: "Aggregate a session's audit trail",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionSummary,
}

func sessionManager() (*session.Manager, error) {
	return session.New(session.Config{
		TrailPath:    sessionTrail,
		DBPath:       sessionDB,
		PatternsPath: sessionPatterns,
		LexiconPath:  sessionLexicon,
	})
}

func runSessionNew(cmd *cobra.Command, args []string) error {
	mgr, err := sessionManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	info, err := mgr.Reinitialize()
	if err != nil {
		return err
	}
	fmt.Println(info.SessionID)
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	mgr, err := sessionManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	info, err := mgr.Session(args[0])
	if err != nil {
		return err
	}
	out, _ := json.MarshalIndent(info, "", "  ")
	fmt.Println(string(out))
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	mgr, err := sessionManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	sessions, err := mgr.Sessions()
	if err != nil {
		return err
	}
	for _, info := range sessions {
		fmt.Printf("%s  %s  seq=%d\n", info.SessionID, info.LockState, info.Seq)
	}
	return nil
}

func runSessionSummary(cmd *cobra.Command, args []string) error {
	mgr, err := sessionManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	sum, err := mgr.Summary(args[0])
	if err != nil {
		return err
	}
	out, _ := json.MarshalIndent(sum, "", "  ")
	fmt.Println(string(out))
	return nil
}
