package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Read returns the ordered sequence of entries for one session, or all
// entries when sessionID is empty. Read-only; works on trails of
// destroyed sessions and regardless of lock state. A missing trail
// file yields an empty sequence.
func Read(path, sessionID string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("audit: open trail: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("audit: parse line %d: %w", lineNum, err)
		}
		if sessionID == "" || e.SessionID == sessionID {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("audit: scan trail: %w", err)
	}
	return entries, nil
}

// Tail returns the last n entries across all sessions.
func Tail(path string, n int) ([]Entry, error) {
	entries, err := Read(path, "")
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
