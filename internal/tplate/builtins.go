package tplate

// Builtins returns the standard template library in its canonical order.
// Native entries are implemented in the fitting engine; where a closed
// formula exists it is carried as an equivalent definition.
func Builtins() []*Template {
	defs := []struct {
		formula string
		traits  Traits
		anchor  string
	}{
		{"Constant(a=avgy) = a", TraitLinear, "constant"},
		{"Linear(a0=intercept, a1=slope) = a0 + a1*x", TraitLinear, "linear"},
		{"Quadratic(a0=avgy, a1=0, a2=0) = a0 + a1*x + a2*x^2", TraitLinear, "quadratic"},
		{"Cubic(a0=avgy, a1=0, a2=0, a3=0) = a0 + a1*x + a2*x^2 + a3*x^3", TraitLinear, "cubic"},
		{"Polynomial4(a0=avgy, a1=0, a2=0, a3=0, a4=0) = a0 + a1*x + a2*x^2 + a3*x^3 + a4*x^4", TraitLinear, "polynomial4"},
		{"Polynomial5(a0=avgy, a1=0, a2=0, a3=0, a4=0, a5=0) = a0 + a1*x + a2*x^2 + a3*x^3 + a4*x^4 + a5*x^5", TraitLinear, "polynomial5"},
		{"Polynomial6(a0=avgy, a1=0, a2=0, a3=0, a4=0, a5=0, a6=0) = a0 + a1*x + a2*x^2 + a3*x^3 + a4*x^4 + a5*x^5 + a6*x^6", TraitLinear, "polynomial6"},
		{"Gaussian(height, center, hwhm) = height*exp(-ln(2)*((x-center)/hwhm)^2)", TraitPeak, "gaussian"},
		{"SplitGaussian(height, center, hwhm1=hwhm, hwhm2=hwhm) = x < center ? Gaussian(height, center, hwhm1) : Gaussian(height, center, hwhm2)", TraitPeak, "splitgaussian"},
		{"GaussianA(area, center, hwhm) = Gaussian(area/hwhm/sqrt(pi/ln(2)), center, hwhm)", TraitPeak, "gaussiana"},
		{"Lorentzian(height, center, hwhm) = height/(1+((x-center)/hwhm)^2)", TraitPeak, "lorentzian"},
		{"LorentzianA(area, center, hwhm) = Lorentzian(area/hwhm/pi, center, hwhm)", TraitPeak, "lorentziana"},
		{"SplitLorentzian(height, center, hwhm1=hwhm, hwhm2=hwhm) = x < center ? Lorentzian(height, center, hwhm1) : Lorentzian(height, center, hwhm2)", TraitPeak, "splitlorentzian"},
		{"Pearson7(height, center, hwhm, shape=2) = height/(1+((x-center)/hwhm)^2*(2^(1/shape)-1))^shape", TraitPeak, "pearson7"},
		{"PseudoVoigt(height, center, hwhm, shape=0.5) = height*((1-shape)*exp(-ln(2)*((x-center)/hwhm)^2) + shape/(1+((x-center)/hwhm)^2))", TraitPeak, "pseudovoigt"},
		{"LogNormal(height, center, width=2*hwhm, asym=0.1) = height*exp(-ln(2)*(ln(2.0*asym*(x-center)/width+1)/asym)^2)", TraitPeak, "lognormal"},
		{"ExpDecay(a=0, t=1) = a*exp(-x/t)", 0, "expdecay"},
		{"Sigmoid(lower, upper, xmid, wsig) = lower + (upper-lower)/(1+exp((xmid-x)/wsig))", TraitSigmoid, "sigmoid"},
	}

	out := make([]*Template, 0, len(defs)+4)
	for _, d := range defs {
		tp, err := ParseFormula(d.formula)
		if err != nil {
			// the builtin table is static; a parse failure is a programming error
			panic("builtin definition does not parse: " + d.formula + ": " + err.Error())
		}
		tp.Traits = d.traits
		tp.DocsAnchor = d.anchor
		out = append(out, tp)
	}

	// engine-implemented shapes without a closed formula
	natives := []struct {
		name   string
		fargs  []string
		defs   []string
		traits Traits
		anchor string
	}{
		{"Voigt", []string{"height", "center", "gwidth", "shape"}, []string{"", "", "hwhm*0.8", "0.1"}, TraitPeak, "voigt"},
		{"VoigtA", []string{"area", "center", "gwidth", "shape"}, []string{"", "", "hwhm*0.8", "0.1"}, TraitPeak, "voigta"},
		{"EMG", []string{"a", "b", "c", "d"}, []string{"height", "center", "hwhm*0.8", "hwhm*0.08"}, TraitPeak, "emg"},
		{"DoniachSunjic", []string{"h", "a", "f", "e"}, []string{"height", "0.1", "1", "center"}, TraitPeak, "doniachsunjic"},
	}
	for _, n := range natives {
		out = append(out, &Template{
			Name:       n.name,
			Fargs:      n.fargs,
			Defvals:    n.defs,
			Traits:     n.traits,
			DocsAnchor: n.anchor,
			Native:     true,
		})
	}
	return out
}
