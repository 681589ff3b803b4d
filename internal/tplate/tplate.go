// Package tplate defines function templates: named, parameterized
// definitions from which the fitting engine instantiates concrete model
// components.
package tplate

import (
	"slices"
	"strings"
)

// Traits classifies the mathematical shape family of a template.
type Traits uint8

const (
	// TraitLinear marks templates linear in all parameters.
	TraitLinear Traits = 1 << iota
	// TraitPeak marks peak-shaped templates.
	TraitPeak
	// TraitSigmoid marks step/sigmoid-shaped templates.
	TraitSigmoid
)

func (t Traits) String() string {
	var parts []string
	if t&TraitLinear != 0 {
		parts = append(parts, "linear")
	}
	if t&TraitPeak != 0 {
		parts = append(parts, "peak")
	}
	if t&TraitSigmoid != 0 {
		parts = append(parts, "sigmoid")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " + ")
}

// Component is one additive term of a compound template: either a
// reference to a sub-template or a plain coefficient expression.
type Component struct {
	Coef string // coefficient expression, empty when Sub is set
	Sub  string // referenced template name, empty when none
}

// Template is a function definition: a name, formal arguments with
// optional textual default values, and a right-hand-side formula. A
// template with an empty RHS and Native set is implemented in the engine
// and cannot be edited as a formula.
type Template struct {
	Name       string
	Fargs      []string
	Defvals    []string // parallel to Fargs; "" means no default
	RHS        string
	Traits     Traits
	Components []Component
	DocsAnchor string // documentation fragment, resolved externally
	Native     bool
}

// AsFormula renders the template as a round-trippable textual definition:
// parsing the result reproduces an equivalent template (unless the
// template is native and has no formula).
func (t *Template) AsFormula() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('(')
	for i, a := range t.Fargs {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(a)
		if i < len(t.Defvals) && t.Defvals[i] != "" {
			b.WriteByte('=')
			b.WriteString(t.Defvals[i])
		}
	}
	b.WriteString(") = ")
	b.WriteString(t.RHS)
	return b.String()
}

// Equal reports field-for-field equality of the parts that matter for
// reconciliation: name, formal args, default values and the formula.
func (t *Template) Equal(other *Template) bool {
	return t.Name == other.Name &&
		slices.Equal(t.Fargs, other.Fargs) &&
		slices.Equal(t.Defvals, other.Defvals) &&
		t.RHS == other.RHS
}

// Clone returns a deep value copy, safe to edit independently.
func (t *Template) Clone() Template {
	c := *t
	c.Fargs = slices.Clone(t.Fargs)
	c.Defvals = slices.Clone(t.Defvals)
	c.Components = slices.Clone(t.Components)
	return c
}
