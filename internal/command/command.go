// Package command executes define/undefine statements against a
// template registry. It is the thin statement runner the editor and the
// reconciler hand their command sequences to.
package command

import (
	"strings"

	"fitscript/internal/lexer"
	"fitscript/internal/registry"
	"fitscript/internal/tplate"
	"fitscript/internal/token"
)

// Recorder receives every executed command for auditing/session replay.
type Recorder interface {
	Record(command string, ok bool, errText string) error
}

// Executor runs statements against one registry. A nil Recorder
// disables auditing.
type Executor struct {
	reg *registry.Registry
	rec Recorder
}

// NewExecutor creates an executor over reg, auditing to rec when not nil.
func NewExecutor(reg *registry.Registry, rec Recorder) *Executor {
	return &Executor{reg: reg, rec: rec}
}

// Apply runs a command sequence (typically reconciler output), stopping
// at the first failure.
func (e *Executor) Apply(cmds []string) error {
	for _, c := range cmds {
		if err := e.RunStatement(c); err != nil {
			return err
		}
	}
	return nil
}

// RunScript executes a script: statements separated by ';', one or more
// per line, '#' starting a comment. Execution stops at the first error.
func (e *Executor) RunScript(script string) error {
	for _, line := range strings.Split(script, "\n") {
		if err := e.runLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) runLine(line string) error {
	lx := lexer.New(line)
	for {
		p, err := lx.Peek()
		if err != nil {
			return err
		}
		if p.Kind == token.Nop {
			return nil
		}
		if err := e.runOne(lx); err != nil {
			return err
		}
		sep, err := lx.TokenIf(token.Semicolon)
		if err != nil {
			return err
		}
		if sep.Kind != token.Semicolon {
			end, err := lx.Next()
			if err != nil {
				return err
			}
			if end.Kind != token.Nop {
				return lx.SyntaxError("expected `;' instead of `%s'", end.Text)
			}
			return nil
		}
	}
}

// RunStatement executes a single statement.
func (e *Executor) RunStatement(stmt string) error {
	lx := lexer.New(stmt)
	p, err := lx.Peek()
	if err != nil {
		return err
	}
	if p.Kind == token.Nop {
		return nil
	}
	if err := e.runOne(lx); err != nil {
		return err
	}
	end, err := lx.Next()
	if err != nil {
		return err
	}
	if end.Kind != token.Nop && end.Kind != token.Semicolon {
		return lx.SyntaxError("expected end of statement instead of `%s'", end.Text)
	}
	return nil
}

// runOne parses and executes the next statement from lx.
func (e *Executor) runOne(lx *lexer.Lexer) error {
	cmd, err := lx.ExpectKind(token.Lname)
	if err != nil {
		return err
	}
	switch cmd.Text {
	case "define":
		tp, err := tplate.ParseDefine(lx)
		if err != nil {
			return err
		}
		err = e.reg.Define(tp)
		e.record("define "+tp.AsFormula(), err)
		return err
	case "undefine":
		for {
			name, err := lx.ExpectKind(token.Cname)
			if err != nil {
				return err
			}
			err = e.reg.Undefine(name.Text)
			e.record("undefine "+name.Text, err)
			if err != nil {
				return err
			}
			sep, err := lx.TokenIf(token.Comma)
			if err != nil {
				return err
			}
			if sep.Kind != token.Comma {
				return nil
			}
		}
	default:
		return lx.SyntaxError("unknown command `%s'", cmd.Text)
	}
}

func (e *Executor) record(cmd string, err error) {
	if e.rec == nil {
		return
	}
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	// audit failures must not mask the command result
	_ = e.rec.Record(cmd, err == nil, errText)
}
