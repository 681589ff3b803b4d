package tplate

import (
	"strings"

	"fitscript/internal/lexer"
	"fitscript/internal/token"
)

// ParseDefine parses one definition of the shape
//
//	Name(arg1, arg2=default, ...) = formula
//
// into a Template. Parsing is all-or-nothing: on any lexical or grammar
// error the template is not produced and nothing else is modified.
// Default values are stored as verbatim text, never evaluated here.
func ParseDefine(lx *lexer.Lexer) (*Template, error) {
	name, err := lx.ExpectKind(token.Cname)
	if err != nil {
		return nil, err
	}
	if _, err := lx.ExpectText("("); err != nil {
		return nil, err
	}

	tp := &Template{Name: name.Text}
	closed, err := lx.TokenIf(token.RParen)
	if err != nil {
		return nil, err
	}
	for closed.Kind == token.Nop {
		arg, err := lx.ExpectKind(token.Lname)
		if err != nil {
			return nil, err
		}
		for _, seen := range tp.Fargs {
			if seen == arg.Text {
				return nil, lx.SyntaxError("duplicate argument %s", arg.Text)
			}
		}
		defval := ""
		eq, err := lx.TokenIf(token.Assign)
		if err != nil {
			return nil, err
		}
		if eq.Kind == token.Assign {
			defval, err = parseDefault(lx)
			if err != nil {
				return nil, err
			}
		}
		tp.Fargs = append(tp.Fargs, arg.Text)
		tp.Defvals = append(tp.Defvals, defval)

		sep, err := lx.ExpectText2(",", ")")
		if err != nil {
			return nil, err
		}
		if sep.Kind == token.RParen {
			break
		}
	}

	if _, err := lx.ExpectKind(token.Assign); err != nil {
		return nil, err
	}
	rest, err := lx.RestOfStatement()
	if err != nil {
		return nil, err
	}
	tp.RHS = strings.TrimSpace(rest.Text)
	if rest.Kind == token.Nop || tp.RHS == "" {
		return nil, lx.SyntaxError("expected formula")
	}
	tp.Components = splitComponents(tp.RHS)
	return tp, nil
}

// ParseFormula is a convenience wrapper over ParseDefine for a
// self-contained definition string.
func ParseFormula(def string) (*Template, error) {
	return ParseDefine(lexer.New(def))
}

// parseDefault captures the verbatim text of a default-value expression:
// everything up to the first ',' or ')' at bracket depth zero.
func parseDefault(lx *lexer.Lexer) (string, error) {
	depth := 0
	var span [2]uint32
	empty := true
	for {
		p, err := lx.Peek()
		if err != nil {
			return "", err
		}
		if p.Kind == token.Nop {
			return "", lx.SyntaxError("expected `,' or `)'")
		}
		if depth == 0 && (p.Kind == token.Comma || p.Kind == token.RParen) {
			break
		}
		switch p.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		tok, err := lx.Next()
		if err != nil {
			return "", err
		}
		if empty {
			span[0] = tok.Span.Start
			empty = false
		}
		span[1] = tok.Span.End
	}
	if empty {
		return "", lx.SyntaxError("expected default value")
	}
	return lx.Input()[span[0]:span[1]], nil
}
