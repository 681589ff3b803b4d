package reconcile

import (
	"github.com/google/uuid"

	"fitscript/internal/diag"
	"fitscript/internal/registry"
	"fitscript/internal/tplate"
)

// WorkingSet is an editable snapshot of the template set, owned by an
// edit session. Edits never touch the registry; Commands() produces the
// define/undefine sequence that would commit them.
type WorkingSet struct {
	id    string
	items []tplate.Template
}

// NewWorkingSet seeds a working set with value copies of the registry's
// committed templates.
func NewWorkingSet(reg *registry.Registry) *WorkingSet {
	return &WorkingSet{
		id:    uuid.NewString(),
		items: reg.Snapshot(),
	}
}

// ID returns the edit-session identifier.
func (ws *WorkingSet) ID() string { return ws.id }

// Len returns the number of templates in the working set.
func (ws *WorkingSet) Len() int { return len(ws.items) }

// Templates returns the working-copy slice; callers may edit elements
// in place.
func (ws *WorkingSet) Templates() []tplate.Template { return ws.items }

// Add appends a template to the working set.
func (ws *WorkingSet) Add(tp tplate.Template) {
	ws.items = append(ws.items, tp)
}

// Remove deletes the template at index i.
func (ws *WorkingSet) Remove(i int) error {
	if i < 0 || i >= len(ws.items) {
		return diag.New(diag.UnknownCode, "working set index %d out of range", i)
	}
	ws.items = append(ws.items[:i], ws.items[i+1:]...)
	return nil
}

// Replace swaps the template at index i.
func (ws *WorkingSet) Replace(i int, tp tplate.Template) error {
	if i < 0 || i >= len(ws.items) {
		return diag.New(diag.UnknownCode, "working set index %d out of range", i)
	}
	ws.items[i] = tp
	return nil
}

// Commands reconciles the working set against the registry's current
// committed state.
func (ws *WorkingSet) Commands(reg *registry.Registry) ([]string, error) {
	return Reconcile(reg.Snapshot(), ws.items)
}
