package tplate_test

import (
	"testing"

	"fitscript/internal/tplate"
)

func TestAsFormula(t *testing.T) {
	tp := &tplate.Template{
		Name:    "Gaussian",
		Fargs:   []string{"height", "center", "hwhm"},
		Defvals: []string{"", "", "1"},
		RHS:     "height*exp(-ln(2)*((x-center)/hwhm)^2)",
	}
	want := "Gaussian(height, center, hwhm=1) = height*exp(-ln(2)*((x-center)/hwhm)^2)"
	if got := tp.AsFormula(); got != want {
		t.Errorf("AsFormula = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	a := &tplate.Template{Name: "F", Fargs: []string{"x1"}, Defvals: []string{""}, RHS: "x1*x"}
	b := a.Clone()
	if !a.Equal(&b) {
		t.Error("clone must be Equal")
	}
	b.RHS = "x1"
	if a.Equal(&b) {
		t.Error("differing rhs must not be Equal")
	}
	c := a.Clone()
	c.Defvals[0] = "1"
	if a.Equal(&c) {
		t.Error("differing defvals must not be Equal")
	}
	// traits and docs anchor do not affect reconciliation equality
	d := a.Clone()
	d.Traits = tplate.TraitPeak
	d.DocsAnchor = "f"
	if !a.Equal(&d) {
		t.Error("traits/docs must not affect Equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := &tplate.Template{Name: "F", Fargs: []string{"p"}, Defvals: []string{"1"}, RHS: "p"}
	b := a.Clone()
	b.Fargs[0] = "q"
	if a.Fargs[0] != "p" {
		t.Error("Clone shares farg storage")
	}
}

func TestTraitsString(t *testing.T) {
	cases := []struct {
		traits tplate.Traits
		want   string
	}{
		{0, "none"},
		{tplate.TraitLinear, "linear"},
		{tplate.TraitPeak, "peak"},
		{tplate.TraitPeak | tplate.TraitSigmoid, "peak + sigmoid"},
	}
	for _, c := range cases {
		if got := c.traits.String(); got != c.want {
			t.Errorf("Traits(%d) = %q, want %q", c.traits, got, c.want)
		}
	}
}

func TestBuiltinsOrderAndTraits(t *testing.T) {
	bs := tplate.Builtins()
	if len(bs) == 0 {
		t.Fatal("no builtins")
	}
	if bs[0].Name != "Constant" {
		t.Errorf("first builtin = %s", bs[0].Name)
	}
	byName := map[string]*tplate.Template{}
	for _, tp := range bs {
		byName[tp.Name] = tp
	}
	if byName["Gaussian"].Traits != tplate.TraitPeak {
		t.Error("Gaussian must be a peak")
	}
	if byName["Linear"].Traits != tplate.TraitLinear {
		t.Error("Linear must be linear")
	}
	if byName["Sigmoid"].Traits != tplate.TraitSigmoid {
		t.Error("Sigmoid must be sigmoid")
	}
	if !byName["Voigt"].Native || byName["Voigt"].RHS != "" {
		t.Error("Voigt must be native without formula")
	}
	if got := byName["GaussianA"].Components; len(got) != 1 || got[0].Sub != "Gaussian" {
		t.Errorf("GaussianA components = %v", got)
	}
	if got := byName["SplitGaussian"].Components; len(got) != 2 {
		t.Errorf("SplitGaussian components = %v", got)
	}
}
