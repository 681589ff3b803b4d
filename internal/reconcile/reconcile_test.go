package reconcile_test

import (
	"strings"
	"testing"

	"fitscript/internal/command"
	"fitscript/internal/diag"
	"fitscript/internal/reconcile"
	"fitscript/internal/registry"
	"fitscript/internal/tplate"
)

func mustParse(t *testing.T, def string) tplate.Template {
	t.Helper()
	tp, err := tplate.ParseFormula(def)
	if err != nil {
		t.Fatalf("ParseFormula(%q): %v", def, err)
	}
	return *tp
}

func TestNoChangesNoCommands(t *testing.T) {
	reg := registry.NewWithBuiltins()
	snap := reg.Snapshot()

	cmds, err := reconcile.Reconcile(snap, snap)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(cmds) != 0 {
		t.Errorf("identical sets produced commands: %v", cmds)
	}
}

func TestAddedTemplate(t *testing.T) {
	reg := registry.NewWithBuiltins()
	committed := reg.Snapshot()
	working := append(reg.Snapshot(), mustParse(t, "Foo(a) = a*x"))

	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != "define Foo(a) = a*x" {
		t.Errorf("cmds = %v", cmds)
	}
}

func TestRemovedTemplate(t *testing.T) {
	reg := registry.NewWithBuiltins()
	committed := reg.Snapshot()
	var working []tplate.Template
	for _, tp := range reg.Snapshot() {
		if tp.Name != "ExpDecay" {
			working = append(working, tp)
		}
	}

	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != "undefine ExpDecay" {
		t.Errorf("cmds = %v", cmds)
	}
}

func TestChangedTemplate(t *testing.T) {
	reg := registry.NewWithBuiltins()
	committed := reg.Snapshot()
	working := reg.Snapshot()
	for i := range working {
		if working[i].Name == "Pearson7" {
			working[i] = mustParse(t, "Pearson7(a=1) = a*x")
		}
	}

	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	want := []string{"undefine Pearson7", "define Pearson7(a=1) = a*x"}
	if len(cmds) != len(want) || cmds[0] != want[0] || cmds[1] != want[1] {
		t.Errorf("cmds = %v, want %v", cmds, want)
	}
}

func TestUndefinesPrecedeDefines(t *testing.T) {
	reg := registry.NewWithBuiltins()
	committed := reg.Snapshot()
	var working []tplate.Template
	for _, tp := range reg.Snapshot() {
		switch tp.Name {
		case "ExpDecay":
			// removed
		case "Pearson7":
			working = append(working, mustParse(t, "Pearson7(a=1) = a*x"))
		case "LogNormal":
			working = append(working, mustParse(t, "LogNormal(h=1, c=0) = h*exp(-ln(2)*(x-c)^2)"))
		default:
			working = append(working, tp)
		}
	}
	working = append(working, mustParse(t, "Foo(a) = a*x"))

	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	sawDefine := false
	for _, c := range cmds {
		if strings.HasPrefix(c, "define ") {
			sawDefine = true
		} else if sawDefine {
			t.Fatalf("undefine after define: %v", cmds)
		}
	}
	// 3 undefines (removed + 2 changed), 3 defines (2 changed + added)
	if len(cmds) != 6 {
		t.Errorf("got %d commands, want 6: %v", len(cmds), cmds)
	}
}

func TestDefinesFollowWorkingOrder(t *testing.T) {
	reg := registry.NewWithBuiltins()
	committed := reg.Snapshot()
	working := append(reg.Snapshot(),
		mustParse(t, "Base(a) = a*x"),
		mustParse(t, "Stack(a) = Base(a) + Base(a/2)"),
	)

	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("cmds = %v", cmds)
	}
	if !strings.HasPrefix(cmds[0], "define Base(") || !strings.HasPrefix(cmds[1], "define Stack(") {
		t.Errorf("defines out of order: %v", cmds)
	}
}

func TestApplyThenReconcileIsEmpty(t *testing.T) {
	reg := registry.NewWithBuiltins()
	var working []tplate.Template
	for _, tp := range reg.Snapshot() {
		switch tp.Name {
		case "ExpDecay":
		case "Pearson7":
			working = append(working, mustParse(t, "Pearson7(a=1) = a*x"))
		default:
			working = append(working, tp)
		}
	}
	working = append(working, mustParse(t, "Foo(a) = a*x"))

	cmds, err := reconcile.Reconcile(reg.Snapshot(), working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if err := command.NewExecutor(reg, nil).Apply(cmds); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	again, err := reconcile.Reconcile(reg.Snapshot(), working)
	if err != nil {
		t.Fatalf("second Reconcile: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("not idempotent, second pass produced: %v", again)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	working := []tplate.Template{
		mustParse(t, "Foo(a) = a*x"),
		mustParse(t, "Foo(b) = b+x"),
	}
	_, err := reconcile.Reconcile(nil, working)
	if !diag.IsCode(err, diag.ReconDuplicateName) {
		t.Errorf("err = %v, want duplicate-name error", err)
	}
}

func TestUnknownComponentRejected(t *testing.T) {
	working := []tplate.Template{
		mustParse(t, "Comp(a) = Missing(a)"),
	}
	_, err := reconcile.Reconcile(nil, working)
	if !diag.IsCode(err, diag.ReconUnknownRef) {
		t.Errorf("err = %v, want unknown-reference error", err)
	}
}

func TestForwardReferenceRejected(t *testing.T) {
	working := []tplate.Template{
		mustParse(t, "Comp(a) = Sub(a)"),
		mustParse(t, "Sub(a) = a*x"),
	}
	_, err := reconcile.Reconcile(nil, working)
	if !diag.IsCode(err, diag.ReconForwardRef) {
		t.Errorf("err = %v, want forward-reference error", err)
	}
}

func TestUnchangedCommittedSubMayFollow(t *testing.T) {
	sub := mustParse(t, "Sub(a) = a*x")
	committed := []tplate.Template{sub}
	// Sub is committed and unchanged, so referencing it before its
	// position in the working copy is fine: no command touches it.
	working := []tplate.Template{
		mustParse(t, "Comp(a) = Sub(a)"),
		sub,
	}
	cmds, err := reconcile.Reconcile(committed, working)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(cmds) != 1 || !strings.HasPrefix(cmds[0], "define Comp(") {
		t.Errorf("cmds = %v", cmds)
	}
}
