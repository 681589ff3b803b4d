package tplate

import (
	"math"

	"github.com/expr-lang/expr"

	"fitscript/internal/diag"
)

// Math functions available inside formulas.
var formulaFuncs = []string{
	"sqrt", "exp", "log10", "ln", "sinh", "cosh", "tanh", "sin", "cos",
	"tan", "atan", "asin", "acos", "erf", "erfc", "gamma", "lgamma",
	"abs", "round", "floor", "ceil", "min2", "max2", "voigt",
}

// Data-derived pseudo-parameters allowed in default-value expressions
// (the fitting engine substitutes guessed values for them).
var guessNames = []string{
	"center", "height", "hwhm", "area", "avgy", "stddev", "miny", "maxy",
	"slope", "intercept",
}

// CheckTemplate validates that the formula and every default-value
// expression compile and reference only declared arguments, known math
// functions, or templates named in known. This is the semantic check the
// definition consumer runs; the parser itself stores text verbatim.
func CheckTemplate(tp *Template, known []string) error {
	if tp.RHS == "" {
		if tp.Native {
			return nil
		}
		return diag.New(diag.SynInvalidFormula, "template %s has no formula", tp.Name)
	}

	env := formulaEnv(tp.Fargs, known)
	if _, err := expr.Compile(tp.RHS, expr.Env(env)); err != nil {
		return diag.New(diag.SynInvalidFormula, "invalid formula for %s: %v", tp.Name, err)
	}

	defEnv := formulaEnv(tp.Fargs, known)
	for _, g := range guessNames {
		defEnv[g] = 0.0
	}
	for i, dv := range tp.Defvals {
		if dv == "" {
			continue
		}
		if _, err := expr.Compile(dv, expr.Env(defEnv)); err != nil {
			return diag.New(diag.SynInvalidFormula,
				"invalid default for %s.%s: %v", tp.Name, tp.Fargs[i], err)
		}
	}
	return nil
}

func formulaEnv(fargs, known []string) map[string]any {
	env := map[string]any{
		"x":  0.0,
		"pi": math.Pi,
	}
	fn := func(...float64) float64 { return 0 }
	for _, f := range formulaFuncs {
		env[f] = fn
	}
	for _, name := range known {
		env[name] = fn
	}
	for _, a := range fargs {
		env[a] = 0.0
	}
	return env
}
