package main

import (
	"fmt"

	"fitscript/internal/audit"
	"fitscript/internal/command"
	"fitscript/internal/config"
	"fitscript/internal/reconcile"
	"fitscript/internal/registry"
	"fitscript/internal/snapshot"
)

// session is the CLI's view of a project: the template registry with
// the project's saved state and startup definitions applied.
type session struct {
	manifest *config.Manifest // nil when no project file was found
	reg      *registry.Registry
}

func openSession() (*session, error) {
	m, ok, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	s := &session{reg: registry.NewWithBuiltins()}
	if !ok {
		return s, nil
	}
	s.manifest = m

	if p := m.SnapshotPath(); p != "" && snapshot.Exists(p) {
		saved, _, err := snapshot.Load(p)
		if err != nil {
			return nil, err
		}
		cmds, err := reconcile.Reconcile(s.reg.Snapshot(), saved)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot %s: %w", p, err)
		}
		if err := command.NewExecutor(s.reg, nil).Apply(cmds); err != nil {
			return nil, fmt.Errorf("restore snapshot %s: %w", p, err)
		}
	}

	ex := command.NewExecutor(s.reg, nil)
	for _, d := range m.Config.Definitions {
		if err := ex.RunStatement(d); err != nil {
			return nil, fmt.Errorf("%s: %w", m.Path, err)
		}
	}
	return s, nil
}

// saveSnapshot persists the current template set when the project
// configures a snapshot path.
func (s *session) saveSnapshot() error {
	if s.manifest == nil {
		return nil
	}
	p := s.manifest.SnapshotPath()
	if p == "" {
		return nil
	}
	_, err := snapshot.Save(p, s.reg.Snapshot())
	return err
}

// openAudit opens the project's audit store, or returns nil when the
// project does not configure one.
func (s *session) openAudit() (*audit.Store, error) {
	if s.manifest == nil {
		return nil, nil
	}
	p := s.manifest.AuditLogPath()
	if p == "" {
		return nil, nil
	}
	return audit.Open(p)
}
