// Package reconcile computes the minimal define/undefine command
// sequence that converges the committed registry to an edited working
// copy of the template set.
package reconcile

import (
	"fitscript/internal/diag"
	"fitscript/internal/tplate"
)

// Reconcile diffs working against committed and returns the commands to
// apply, all undefines before all defines so a name can be freed and
// redefined without a transient collision. Validation is all-or-nothing:
// an inconsistent working copy produces an error and no commands.
//
// Reconciliation is idempotent: applying the commands and reconciling
// again yields an empty sequence.
func Reconcile(committed, working []tplate.Template) ([]string, error) {
	if err := validate(committed, working); err != nil {
		return nil, err
	}

	inWorking := make(map[string]int, len(working))
	for i := range working {
		inWorking[working[i].Name] = i
	}
	byName := make(map[string]*tplate.Template, len(committed))
	for i := range committed {
		byName[committed[i].Name] = &committed[i]
	}

	var undefines, defines []string
	for i := range committed {
		if _, ok := inWorking[committed[i].Name]; !ok {
			undefines = append(undefines, "undefine "+committed[i].Name)
		}
	}
	for i := range working {
		w := &working[i]
		if old, ok := byName[w.Name]; ok {
			if old.Equal(w) {
				continue
			}
			undefines = append(undefines, "undefine "+w.Name)
		}
		defines = append(defines, "define "+w.AsFormula())
	}
	return append(undefines, defines...), nil
}

// validate rejects working copies the registry could never reach:
// duplicate names, components referencing names absent from the working
// copy, and forward references to templates that are themselves being
// (re)defined later in the sequence.
func validate(committed, working []tplate.Template) error {
	pos := make(map[string]int, len(working))
	for i := range working {
		name := working[i].Name
		if _, dup := pos[name]; dup {
			return diag.New(diag.ReconDuplicateName,
				"working copy defines template %s twice", name)
		}
		pos[name] = i
	}

	unchanged := make(map[string]bool, len(committed))
	for i := range committed {
		if j, ok := pos[committed[i].Name]; ok && committed[i].Equal(&working[j]) {
			unchanged[committed[i].Name] = true
		}
	}

	for i := range working {
		for _, comp := range working[i].Components {
			if comp.Sub == "" {
				continue
			}
			j, ok := pos[comp.Sub]
			if !ok {
				return diag.New(diag.ReconUnknownRef,
					"component of %s references undefined template %s",
					working[i].Name, comp.Sub)
			}
			// a sub-template that needs a define must precede its user,
			// since commands run in sequence
			if !unchanged[comp.Sub] && j > i {
				return diag.New(diag.ReconForwardRef,
					"%s references %s, which is defined after it in the working copy",
					working[i].Name, comp.Sub)
			}
		}
	}
	return nil
}
