package audit_test

import (
	"path/filepath"
	"testing"
	"time"

	"fitscript/internal/audit"
)

func openStore(t *testing.T) *audit.Store {
	t.Helper()
	s, err := audit.Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndReplay(t *testing.T) {
	s := openStore(t)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	entries := []audit.Entry{
		{Session: "s1", Seq: 1, Command: "define Foo(a) = a*x", OK: true, At: at},
		{Session: "s1", Seq: 2, Command: "undefine Missing", OK: false, Error: "template not found", At: at.Add(time.Second)},
		{Session: "s2", Seq: 1, Command: "undefine Foo", OK: true, At: at.Add(2 * time.Second)},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Replay("s1")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Replay returned %d entries, want 2", len(got))
	}
	if got[0].Command != "define Foo(a) = a*x" || !got[0].OK {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[1].OK || got[1].Error != "template not found" {
		t.Errorf("second entry = %+v", got[1])
	}
	if !got[0].At.Equal(at) {
		t.Errorf("At = %v, want %v", got[0].At, at)
	}
}

func TestReplayUnknownSessionIsEmpty(t *testing.T) {
	s := openStore(t)
	got, err := s.Replay("nope")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestSessions(t *testing.T) {
	s := openStore(t)
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s.Append(audit.Entry{Session: "older", Seq: 1, Command: "c", OK: true, At: base})
	s.Append(audit.Entry{Session: "newer", Seq: 1, Command: "c", OK: true, At: base.Add(time.Hour)})

	ids, err := s.Sessions()
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(ids) != 2 || ids[0] != "older" || ids[1] != "newer" {
		t.Errorf("ids = %v", ids)
	}
}

func TestSessionLogNumbersFromOne(t *testing.T) {
	s := openStore(t)
	log := s.Session("sess")

	if err := log.Record("define Foo(a) = a*x", true, ""); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := log.Record("undefine Foo", true, ""); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.Replay("sess")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(got) != 2 || got[0].Seq != 1 || got[1].Seq != 2 {
		t.Errorf("entries = %+v", got)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.db")

	s, err := audit.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Append(audit.Entry{Session: "s", Seq: 1, Command: "c", OK: true, At: time.Now()}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	s.Close()

	s2, err := audit.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.Replay("s")
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d entries after reopen, want 1", len(got))
	}
}
