package command_test

import (
	"strings"
	"testing"

	"fitscript/internal/command"
	"fitscript/internal/registry"
)

type recorded struct {
	cmd     string
	ok      bool
	errText string
}

type captureRecorder struct {
	entries []recorded
}

func (c *captureRecorder) Record(cmd string, ok bool, errText string) error {
	c.entries = append(c.entries, recorded{cmd: cmd, ok: ok, errText: errText})
	return nil
}

func TestRunStatementDefine(t *testing.T) {
	reg := registry.NewWithBuiltins()
	ex := command.NewExecutor(reg, nil)

	err := ex.RunStatement("define Foo(a=1, b=2) = a*exp(b*x)")
	if err != nil {
		t.Fatalf("define failed: %v", err)
	}
	h, err := reg.Lookup("Foo")
	if err != nil {
		t.Fatalf("Lookup(Foo): %v", err)
	}
	if got := h.Template().RHS; got != "a*exp(b*x)" {
		t.Errorf("RHS = %q", got)
	}
}

func TestRunStatementUndefineList(t *testing.T) {
	reg := registry.NewWithBuiltins()
	ex := command.NewExecutor(reg, nil)

	for _, def := range []string{
		"define Foo(a) = a*x",
		"define Bar(b) = b+x",
	} {
		if err := ex.RunStatement(def); err != nil {
			t.Fatalf("%s: %v", def, err)
		}
	}
	if err := ex.RunStatement("undefine Foo, Bar"); err != nil {
		t.Fatalf("undefine failed: %v", err)
	}
	for _, name := range []string{"Foo", "Bar"} {
		if _, err := reg.Lookup(name); err == nil {
			t.Errorf("%s still defined after undefine", name)
		}
	}
}

func TestRunScriptStatementsAndComments(t *testing.T) {
	reg := registry.NewWithBuiltins()
	ex := command.NewExecutor(reg, nil)

	script := strings.Join([]string{
		"define Foo(a) = a*x; define Bar(b) = b+x  # two on one line",
		"",
		"# a full-line comment",
		"undefine Bar",
	}, "\n")
	if err := ex.RunScript(script); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if _, err := reg.Lookup("Foo"); err != nil {
		t.Errorf("Foo missing: %v", err)
	}
	if _, err := reg.Lookup("Bar"); err == nil {
		t.Errorf("Bar should be undefined")
	}
}

func TestRunScriptStopsAtFirstError(t *testing.T) {
	reg := registry.NewWithBuiltins()
	ex := command.NewExecutor(reg, nil)

	script := "define Foo(a) = a*x\nundefine Missing\ndefine Bar(b) = b+x"
	if err := ex.RunScript(script); err == nil {
		t.Fatalf("expected error for undefined template")
	}
	if _, err := reg.Lookup("Bar"); err == nil {
		t.Errorf("Bar defined past the failing statement")
	}
}

func TestUnknownCommand(t *testing.T) {
	ex := command.NewExecutor(registry.NewWithBuiltins(), nil)
	err := ex.RunStatement("guess Gaussian")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "unknown command `guess'") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestTrailingGarbageRejected(t *testing.T) {
	ex := command.NewExecutor(registry.NewWithBuiltins(), nil)
	if err := ex.RunStatement("undefine Gaussian extra"); err == nil {
		t.Fatalf("expected error for trailing token")
	}
}

func TestRecorderSeesOutcome(t *testing.T) {
	reg := registry.NewWithBuiltins()
	rec := &captureRecorder{}
	ex := command.NewExecutor(reg, rec)

	if err := ex.RunStatement("define Foo(a) = a*x"); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := ex.RunStatement("undefine Missing"); err == nil {
		t.Fatalf("expected error")
	}

	if len(rec.entries) != 2 {
		t.Fatalf("recorded %d entries, want 2", len(rec.entries))
	}
	first := rec.entries[0]
	if first.cmd != "define Foo(a) = a*x" || !first.ok || first.errText != "" {
		t.Errorf("first entry = %+v", first)
	}
	second := rec.entries[1]
	if second.cmd != "undefine Missing" || second.ok || second.errText == "" {
		t.Errorf("second entry = %+v", second)
	}
}

func TestApplySequence(t *testing.T) {
	reg := registry.NewWithBuiltins()
	ex := command.NewExecutor(reg, nil)

	cmds := []string{
		"define Base(a) = a*x",
		"define OnTop(c) = c + Base(c)",
		"undefine ExpDecay",
	}
	if err := ex.Apply(cmds); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := reg.Lookup("OnTop"); err != nil {
		t.Errorf("OnTop missing: %v", err)
	}
	if _, err := reg.Lookup("ExpDecay"); err == nil {
		t.Errorf("ExpDecay should be gone")
	}
}
