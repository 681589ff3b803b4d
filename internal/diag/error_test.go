package diag_test

import (
	"fmt"
	"testing"

	"fitscript/internal/diag"
)

func TestErrorFormatting(t *testing.T) {
	input := "define Gaussian(h) = h*2"
	err := diag.NewSyntax(diag.SynUnexpectedToken, input, 16, "expected ( instead of =")
	want := "at 16, near 'e Gaussian': expected ( instead of ="
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorShortInput(t *testing.T) {
	err := diag.NewSyntax(diag.LexBadVarname, "$ ", 1, "unexpected character after '$'")
	want := "at 1: unexpected character after '$'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNonPositional(t *testing.T) {
	err := diag.New(diag.RegInUse, "template %q is in use", "Gaussian")
	if err.Error() != `template "Gaussian" is in use` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	err := diag.New(diag.RegNotFound, "no such template")
	if diag.CodeOf(err) != diag.RegNotFound {
		t.Errorf("CodeOf = %v", diag.CodeOf(err))
	}
	wrapped := fmt.Errorf("lookup: %w", err)
	if !diag.IsCode(wrapped, diag.RegNotFound) {
		t.Error("IsCode failed through wrapping")
	}
	if diag.CodeOf(fmt.Errorf("plain")) != diag.UnknownCode {
		t.Error("plain error should map to UnknownCode")
	}
}

func TestCodeID(t *testing.T) {
	if diag.LexUnterminatedString.ID() != "E1001" {
		t.Errorf("ID() = %q", diag.LexUnterminatedString.ID())
	}
}
