// Package config loads the fitscript.toml project file: session
// settings plus template definitions to run at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project file searched for from the working directory
// upward.
const FileName = "fitscript.toml"

// Manifest is a located and parsed project file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the fitscript.toml contents.
type Config struct {
	Session     sessionConfig `toml:"session"`
	Definitions []string      `toml:"definitions"`
}

type sessionConfig struct {
	AuditLog string `toml:"audit_log"`
	Snapshot string `toml:"snapshot"`
	Color    string `toml:"color"`
}

// AuditLogPath returns the audit database path, resolved against the
// project root. Empty means auditing is off.
func (m *Manifest) AuditLogPath() string {
	return m.resolve(m.Config.Session.AuditLog)
}

// SnapshotPath returns the template-set snapshot path, resolved against
// the project root. Empty means snapshots are off.
func (m *Manifest) SnapshotPath() string {
	return m.resolve(m.Config.Session.Snapshot)
}

func (m *Manifest) resolve(rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}

// Find walks from startDir toward the filesystem root looking for the
// project file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load locates and parses the project file. ok is false when no file
// was found, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// LoadFile parses one project file.
func LoadFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undec[0].String())
	}
	switch cfg.Session.Color {
	case "", "auto", "always", "never":
	default:
		return Config{}, fmt.Errorf("%s: [session].color must be auto, always or never", path)
	}
	return cfg, nil
}
