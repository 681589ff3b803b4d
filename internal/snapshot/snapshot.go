// Package snapshot saves and restores the template set to disk, so a
// session's definitions survive restarts without re-running scripts.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"fitscript/internal/tplate"
)

// Increment when the payload format changes.
const schemaVersion uint16 = 1

type payload struct {
	Schema    uint16
	ID        string
	SavedAt   time.Time
	Templates []tplate.Template
}

// Info describes a saved snapshot.
type Info struct {
	ID      string
	SavedAt time.Time
}

// ErrSchema is returned when a snapshot was written by an incompatible
// version.
var ErrSchema = errors.New("incompatible snapshot schema")

// Save writes the template set to path atomically and returns the
// snapshot id.
func Save(path string, templates []tplate.Template) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())

	p := payload{
		Schema:    schemaVersion,
		ID:        uuid.NewString(),
		SavedAt:   time.Now().UTC(),
		Templates: templates,
	}
	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Load reads a snapshot. A missing file yields fs.ErrNotExist.
func Load(path string) ([]tplate.Template, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, Info{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, Info{}, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, schemaVersion)
	}
	return p.Templates, Info{ID: p.ID, SavedAt: p.SavedAt}, nil
}

// Exists reports whether a snapshot file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
