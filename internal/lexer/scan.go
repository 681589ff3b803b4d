package lexer

import (
	"strconv"

	"fitscript/internal/diag"
	"fitscript/internal/token"
)

// readToken scans one token starting at the first non-space byte. Every
// input position maps to exactly one token; scanning never mutates the
// input, only the cursor. On a lexical error the cursor is rewound to the
// token start so the session sees a stable position.
func (lx *Lexer) readToken(glob bool) (token.Token, error) {
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.input[sp.Start:sp.End])}
	}
	fail := func(code diag.Code, pos int, format string, args ...any) (token.Token, error) {
		lx.cursor.Reset(start)
		return token.Token{}, lx.lexError(code, pos, format, args...)
	}

	if lx.cursor.EOF() || lx.cursor.Peek() == '#' {
		// end of input or comment: a zero-length Nop, not an error
		return emit(token.Nop), nil
	}

	switch ch := lx.cursor.Peek(); ch {
	case '\'':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' {
			lx.cursor.Bump()
		}
		if lx.cursor.EOF() {
			return fail(diag.LexUnterminatedString, int(lx.cursor.Off), "unfinished string")
		}
		lx.cursor.Bump() // closing quote
		return emit(token.QString), nil

	case '>':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.GtEq), nil
		}
		if lx.cursor.Eat('>') {
			return emit(token.Append), nil
		}
		return emit(token.Gt), nil

	case '<':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.LtEq), nil
		}
		if lx.cursor.Eat('>') {
			// '<>' is a synonym of '!='
			return emit(token.NotEq), nil
		}
		return emit(token.Lt), nil

	case '=':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.EqEq), nil
		}
		return emit(token.Assign), nil

	case '+':
		lx.cursor.Bump()
		if lx.cursor.Eat('-') {
			return emit(token.PlusMinus), nil
		}
		if lx.cursor.Eat('=') {
			return emit(token.PlusAssign), nil
		}
		return emit(token.Plus), nil

	case '-':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.MinusAssign), nil
		}
		return emit(token.Minus), nil

	case '!':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return emit(token.NotEq), nil
		}
		return emit(token.Bang), nil

	case '.':
		if lx.isNumberAfterDot() {
			return lx.scanNumber(start)
		}
		lx.cursor.Bump()
		if lx.cursor.Eat('.') {
			lx.cursor.Eat('.') // swallow an optional 3rd dot
			return emit(token.Dots), nil
		}
		return emit(token.Dot), nil

	case '@':
		lx.cursor.Bump()
		switch {
		case lx.cursor.Eat('*'):
			t := emit(token.Dataset)
			t.Index = token.DatasetAll
			return t, nil
		case lx.cursor.Eat('+'):
			t := emit(token.Dataset)
			t.Index = token.DatasetNew
			return t, nil
		case isDigit(lx.cursor.Peek()):
			digits := lx.cursor.Mark()
			for isDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			n, err := strconv.ParseInt(string(lx.input[uint32(digits):lx.cursor.Off]), 10, 64)
			if err != nil {
				return fail(diag.LexBadDataset, int(lx.cursor.Off), "invalid dataset index")
			}
			t := emit(token.Dataset)
			t.Index = n
			return t, nil
		default:
			return fail(diag.LexBadDataset, int(lx.cursor.Off), "unexpected character after '@'")
		}

	case '$':
		return lx.scanSigilName(start, glob, token.Varname, diag.LexBadVarname, "$")

	case '%':
		return lx.scanSigilName(start, glob, token.Funcname, diag.LexBadFuncname, "%")

	case '(':
		lx.cursor.Bump()
		return emit(token.LParen), nil
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen), nil
	case '[':
		lx.cursor.Bump()
		return emit(token.LBracket), nil
	case ']':
		lx.cursor.Bump()
		return emit(token.RBracket), nil
	case '{':
		lx.cursor.Bump()
		return emit(token.LBrace), nil
	case '}':
		lx.cursor.Bump()
		return emit(token.RBrace), nil
	case '*':
		lx.cursor.Bump()
		return emit(token.Star), nil
	case '/':
		lx.cursor.Bump()
		return emit(token.Slash), nil
	case '^':
		lx.cursor.Bump()
		return emit(token.Caret), nil
	case ',':
		lx.cursor.Bump()
		return emit(token.Comma), nil
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon), nil
	case ':':
		lx.cursor.Bump()
		return emit(token.Colon), nil
	case '~':
		lx.cursor.Bump()
		return emit(token.Tilde), nil
	case '?':
		lx.cursor.Bump()
		return emit(token.Question), nil

	default:
		switch {
		case isDigit(ch):
			return lx.scanNumber(start)
		case isUpper(ch):
			lx.cursor.Bump()
			if isAlnum(lx.cursor.Peek()) {
				for isAlnum(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return emit(token.Cname), nil
			}
			return emit(token.Uletter), nil
		case isLower(ch) || ch == '_':
			for isAlnum(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			return emit(token.Lname), nil
		default:
			return fail(diag.LexUnexpectedChar, int(lx.cursor.Off), "unexpected character: %q", string(ch))
		}
	}
}

// scanSigilName reads a $name or %name token. The first character after
// the sigil must be a letter, '_' or '*'. A lone '*' is always accepted
// ("$*" is unambiguous and must not fail during Peek); further '*' bytes
// are only taken in glob mode, so "$c=$a*$b" keeps '*' as an operator.
func (lx *Lexer) scanSigilName(start Mark, glob bool, kind token.Kind, code diag.Code, sigil string) (token.Token, error) {
	lx.cursor.Bump() // the sigil
	b := lx.cursor.Peek()
	if !(isAlpha(b) || b == '_' || b == '*') {
		pos := int(lx.cursor.Off)
		lx.cursor.Reset(start)
		return token.Token{}, lx.lexError(code, pos, "unexpected character after '%s'", sigil)
	}
	lx.cursor.Bump()
	for {
		b := lx.cursor.Peek()
		if isAlnum(b) || b == '_' || (glob && b == '*') {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.input[sp.Start:sp.End])}, nil
}

// isNumberAfterDot reports whether the cursor sits on ".<digit>".
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDigit(b1)
}

// scanNumber consumes a floating-point literal: digits, an optional
// fraction, an optional exponent. A trailing '.' is not taken when the
// next byte is another '.', so "10..20" lexes as number, Dots, number.
func (lx *Lexer) scanNumber(start Mark) (token.Token, error) {
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); lx.cursor.Peek() == '.' && (!ok || b0 != '.' || b1 != '.') {
		lx.cursor.Bump()
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		// the exponent is only taken when at least one digit follows
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if !lx.cursor.Eat('+') {
			lx.cursor.Eat('-')
		}
		if isDigit(lx.cursor.Peek()) {
			for isDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.input[sp.Start:sp.End])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		pos := int(lx.cursor.Off)
		lx.cursor.Reset(start)
		return token.Token{}, lx.lexError(diag.LexUnexpectedChar, pos, "malformed number %q", text)
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text, Value: v}, nil
}
