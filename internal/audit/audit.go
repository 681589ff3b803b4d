// Package audit persists every executed command to a local SQLite
// database so an edit session can be reviewed or replayed later.
package audit

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	session TEXT    NOT NULL,
	seq     INTEGER NOT NULL,
	command TEXT    NOT NULL,
	ok      INTEGER NOT NULL,
	error   TEXT    NOT NULL DEFAULT '',
	at      TEXT    NOT NULL,
	PRIMARY KEY (session, seq)
);
CREATE INDEX IF NOT EXISTS audit_log_at ON audit_log (at);
`

// Entry is one executed command.
type Entry struct {
	Session string
	Seq     int64
	Command string
	OK      bool
	Error   string
	At      time.Time
}

// Store is an append-only command log backed by SQLite.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the audit database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate audit log: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append writes one entry.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO audit_log (session, seq, command, ok, error, at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Session, e.Seq, e.Command, boolToInt(e.OK), e.Error, e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// Replay returns the entries of one session in execution order.
func (s *Store) Replay(session string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session, seq, command, ok, error, at FROM audit_log WHERE session = ? ORDER BY seq`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("replay session %s: %w", session, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ok int
		var at string
		if err := rows.Scan(&e.Session, &e.Seq, &e.Command, &ok, &e.Error, &at); err != nil {
			return nil, err
		}
		e.OK = ok != 0
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("bad timestamp in audit log: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Sessions lists the recorded session ids, oldest first.
func (s *Store) Sessions() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT session FROM audit_log GROUP BY session ORDER BY MIN(at)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Session returns a recorder that logs commands under the given id,
// numbering them from 1.
func (s *Store) Session(id string) *SessionLog {
	return &SessionLog{store: s, id: id}
}

// SessionLog records the commands of one edit session.
type SessionLog struct {
	store *Store
	id    string
	mu    sync.Mutex
	seq   int64
}

// Record appends one command outcome to the session.
func (l *SessionLog) Record(cmd string, ok bool, errText string) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.mu.Unlock()
	return l.store.Append(Entry{
		Session: l.id,
		Seq:     seq,
		Command: cmd,
		OK:      ok,
		Error:   errText,
		At:      time.Now(),
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
