// Package registry owns the committed set of function templates. It is
// the sole authority on template lifetime: external consumers hold
// opaque handles and the registry tracks how many live consumers depend
// on each template to guard deletion.
package registry

import (
	"fmt"
	"sync"

	"github.com/sahilm/fuzzy"

	"fitscript/internal/diag"
	"fitscript/internal/tplate"
)

type entry struct {
	tp   *tplate.Template
	uses int // live external consumers (instantiated functions)
}

// Handle is a shared reference to a registry entry. It stays valid after
// later registry mutations; deletion of the underlying template is
// refused while acquired handles exist.
type Handle struct {
	e *entry
}

// Template returns the referenced template.
func (h Handle) Template() *tplate.Template {
	if h.e == nil {
		return nil
	}
	return h.e.tp
}

// Valid reports whether the handle references an entry.
func (h Handle) Valid() bool { return h.e != nil }

// Registry is the committed, ordered template set. Mutations are
// serialized against concurrent reads with a single-writer lock.
type Registry struct {
	mu      sync.RWMutex
	entries []*entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// NewWithBuiltins returns a registry seeded with the standard template
// library; builtins enumerate before any user definition.
func NewWithBuiltins() *Registry {
	r := New()
	for _, tp := range tplate.Builtins() {
		if err := r.Define(tp); err != nil {
			panic(fmt.Sprintf("builtin %s does not define: %v", tp.Name, err))
		}
	}
	return r
}

func (r *Registry) find(name string) *entry {
	for _, e := range r.entries {
		if e.tp.Name == name {
			return e
		}
	}
	return nil
}

// Lookup returns a read handle for name. Unknown names fail with a
// not-found error carrying a closest-match suggestion when one exists.
func (r *Registry) Lookup(name string) (Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e := r.find(name); e != nil {
		return Handle{e: e}, nil
	}
	return Handle{}, r.notFound(name)
}

func (r *Registry) notFound(name string) error {
	msg := fmt.Sprintf("undefined template %s", name)
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.tp.Name)
	}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", matches[0].Str)
	}
	return diag.New(diag.RegNotFound, "%s", msg)
}

// Define inserts or replaces a template by name. The formula is
// validated against the currently known names first. Replacing a
// template with live external consumers fails with an in-use error.
func (r *Registry) Define(tp *tplate.Template) error {
	if tp == nil || tp.Name == "" {
		return diag.New(diag.SynInvalidFormula, "template has no name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	known := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if e.tp.Name != tp.Name {
			known = append(known, e.tp.Name)
		}
	}
	if err := tplate.CheckTemplate(tp, known); err != nil {
		return err
	}
	r.deriveTraits(tp)

	if e := r.find(tp.Name); e != nil {
		if e.uses > 0 {
			return diag.New(diag.RegInUse,
				"cannot redefine template %s: %d function(s) still use it", tp.Name, e.uses)
		}
		e.tp = tp
		return nil
	}
	r.entries = append(r.entries, &entry{tp: tp})
	return nil
}

// Undefine removes a template by name. It fails with an in-use error
// while live external consumers or other templates' components still
// reference it; the registry is left unchanged in that case.
func (r *Registry) Undefine(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.find(name)
	if e == nil {
		return r.notFound(name)
	}
	if e.uses > 0 {
		return diag.New(diag.RegInUse,
			"cannot undefine template %s: %d function(s) still use it", name, e.uses)
	}
	for _, other := range r.entries {
		if other == e {
			continue
		}
		for _, comp := range other.tp.Components {
			if comp.Sub == name {
				return diag.New(diag.RegInUse,
					"cannot undefine template %s: used by template %s", name, other.tp.Name)
			}
		}
	}
	for i, cur := range r.entries {
		if cur == e {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	return nil
}

// Enumerate returns handles for all templates in definition order:
// builtins first, then user definitions in commit order.
func (r *Registry) Enumerate() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handle, len(r.entries))
	for i, e := range r.entries {
		out[i] = Handle{e: e}
	}
	return out
}

// Snapshot returns independent value copies of all templates, in order.
// Edit sessions seed their working copy from this.
func (r *Registry) Snapshot() []tplate.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]tplate.Template, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.tp.Clone()
	}
	return out
}

// Acquire returns a handle for name and counts it as a live external
// consumer; the fitting engine calls this when instantiating a function.
func (r *Registry) Acquire(name string) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.find(name)
	if e == nil {
		return Handle{}, r.notFound(name)
	}
	e.uses++
	return Handle{e: e}, nil
}

// Release drops one live-consumer count for the handle.
func (r *Registry) Release(h Handle) {
	if h.e == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.e.uses > 0 {
		h.e.uses--
	}
}

// UseCount returns the number of live external consumers of name.
func (r *Registry) UseCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e := r.find(name); e != nil {
		return e.uses
	}
	return 0
}

// UsedBy returns the names of templates whose component lists reference
// name, plus the count of live external consumers.
func (r *Registry) UsedBy(name string) (templates []string, externalUses int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.tp.Name == name {
			externalUses = e.uses
			continue
		}
		for _, comp := range e.tp.Components {
			if comp.Sub == name {
				templates = append(templates, e.tp.Name)
				break
			}
		}
	}
	return templates, externalUses
}

// deriveTraits infers trait bits for a compound template from its
// sub-templates when no explicit traits were set: a sum of peaks is a
// peak, a sum of sigmoids a sigmoid. Caller holds the write lock.
func (r *Registry) deriveTraits(tp *tplate.Template) {
	if tp.Traits != 0 || len(tp.Components) == 0 {
		return
	}
	acc := tplate.TraitLinear | tplate.TraitPeak | tplate.TraitSigmoid
	seen := false
	for _, comp := range tp.Components {
		if comp.Sub == "" {
			continue
		}
		e := r.find(comp.Sub)
		if e == nil {
			return
		}
		acc &= e.tp.Traits
		seen = true
	}
	if seen {
		tp.Traits = acc
	}
}
