// Package store persists session identity and lock state in SQLite so
// a hard lock survives process restarts. The audit trail, not the
// store, is the tamper-evident record of evaluations; the store is a
// registry, never a recovery path out of LOCKED.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ppiankov/moralwatch/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	lock_state  TEXT NOT NULL DEFAULT 'active',
	lock_reason TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	locked_at   TEXT,
	seq         INTEGER NOT NULL DEFAULT 0
);
`

// ErrUnknownSession is returned when a session ID is not in the
// registry. Caller error; never defaulted.
var ErrUnknownSession = errors.New("store: unknown session")

// Store manages sessions in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// The registry sees short single-row writes from many sessions at
	// once. One connection serializes them; the busy timeout covers
	// other processes holding the file.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("store: pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("store: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession registers a fresh ACTIVE session under a new UUID.
func (s *Store) CreateSession() (model.SessionInfo, error) {
	info := model.SessionInfo{
		SessionID: uuid.New().String(),
		LockState: model.Active,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, lock_state, created_at) VALUES (?, ?, ?)`,
		info.SessionID, string(info.LockState), info.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.SessionInfo{}, fmt.Errorf("store: insert session: %w", err)
	}
	return info, nil
}

// Get returns the session registry row, or ErrUnknownSession.
func (s *Store) Get(sessionID string) (model.SessionInfo, error) {
	row := s.db.QueryRow(
		`SELECT session_id, lock_state, lock_reason, created_at, locked_at, seq
		 FROM sessions WHERE session_id = ?`, sessionID)

	var info model.SessionInfo
	var state, createdAt string
	var lockedAt sql.NullString
	if err := row.Scan(&info.SessionID, &state, &info.LockReason, &createdAt, &lockedAt, &info.Seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SessionInfo{}, ErrUnknownSession
		}
		return model.SessionInfo{}, fmt.Errorf("store: get session: %w", err)
	}
	info.LockState = model.LockState(state)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		info.CreatedAt = ts
	}
	if lockedAt.Valid {
		if ts, err := time.Parse(time.RFC3339Nano, lockedAt.String); err == nil {
			info.LockedAt = ts
		}
	}
	return info, nil
}

// Commit records the outcome of one evaluation: the new sequence
// number, and the lock transition if one occurred. Lock state only
// moves toward LOCKED here; there is no inverse operation anywhere in
// this package.
func (s *Store) Commit(sessionID string, seq int, state model.LockState, reason string) error {
	var res sql.Result
	var err error
	if state == model.Locked {
		res, err = s.db.Exec(
			`UPDATE sessions
			 SET seq = ?, lock_state = ?, lock_reason = ?,
			     locked_at = COALESCE(locked_at, ?)
			 WHERE session_id = ?`,
			seq, string(model.Locked), reason,
			time.Now().UTC().Format(time.RFC3339Nano), sessionID,
		)
	} else {
		res, err = s.db.Exec(
			`UPDATE sessions SET seq = ? WHERE session_id = ?`,
			seq, sessionID,
		)
	}
	if err != nil {
		return fmt.Errorf("store: commit evaluation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: commit evaluation: %w", err)
	}
	if n == 0 {
		return ErrUnknownSession
	}
	return nil
}

// List returns all sessions, newest first.
func (s *Store) List() ([]model.SessionInfo, error) {
	rows, err := s.db.Query(
		`SELECT session_id, lock_state, lock_reason, created_at, locked_at, seq
		 FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	var out []model.SessionInfo
	for rows.Next() {
		var info model.SessionInfo
		var state, createdAt string
		var lockedAt sql.NullString
		if err := rows.Scan(&info.SessionID, &state, &info.LockReason, &createdAt, &lockedAt, &info.Seq); err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		info.LockState = model.LockState(state)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			info.CreatedAt = ts
		}
		if lockedAt.Valid {
			if ts, err := time.Parse(time.RFC3339Nano, lockedAt.String); err == nil {
				info.LockedAt = ts
			}
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
