package lexer

import (
	"fitscript/internal/source"
	"fitscript/internal/token"
)

// The expect family pulls one token and fails with a grammar error naming
// both the expected and the actual token. Raw-text variants compare the
// verbatim token text.

// ExpectKind consumes the next token, requiring kind k.
func (lx *Lexer) ExpectKind(k token.Kind) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Kind != k {
		if p.Kind == token.Nop {
			return token.Token{}, lx.SyntaxError("expected %s", k)
		}
		return token.Token{}, lx.SyntaxError("expected %s instead of %s", k, p.Kind)
	}
	return lx.Next()
}

// ExpectKind2 consumes the next token, requiring kind k1 or k2.
func (lx *Lexer) ExpectKind2(k1, k2 token.Kind) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Kind != k1 && p.Kind != k2 {
		if p.Kind == token.Nop {
			return token.Token{}, lx.SyntaxError("expected %s or %s", k1, k2)
		}
		return token.Token{}, lx.SyntaxError("expected %s or %s instead of %s", k1, k2, p.Kind)
	}
	return lx.Next()
}

// ExpectText consumes the next token, requiring its verbatim text.
func (lx *Lexer) ExpectText(raw string) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Text != raw {
		if p.Kind == token.Nop {
			return token.Token{}, lx.SyntaxError("expected `%s'", raw)
		}
		return token.Token{}, lx.SyntaxError("expected `%s' instead of `%s'", raw, p.Text)
	}
	return lx.Next()
}

// ExpectText2 consumes the next token, requiring one of two verbatim texts.
func (lx *Lexer) ExpectText2(raw1, raw2 string) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Text != raw1 && p.Text != raw2 {
		if p.Kind == token.Nop {
			return token.Token{}, lx.SyntaxError("expected `%s' or `%s'", raw1, raw2)
		}
		return token.Token{}, lx.SyntaxError("expected `%s' or `%s' instead of `%s'", raw1, raw2, p.Text)
	}
	return lx.Next()
}

// ExpectKindOrText consumes the next token, requiring kind k or verbatim
// text raw.
func (lx *Lexer) ExpectKindOrText(k token.Kind, raw string) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Kind != k && p.Text != raw {
		if p.Kind == token.Nop {
			return token.Token{}, lx.SyntaxError("expected %s or `%s'", k, raw)
		}
		return token.Token{}, lx.SyntaxError("expected %s or `%s' instead of `%s'", k, raw, p.Text)
	}
	return lx.Next()
}

// TokenIf consumes and returns the next token when it has kind k;
// otherwise it returns a zero-length Nop token without consuming
// anything. Optional grammar elements use this to avoid error handling
// at the call site.
func (lx *Lexer) TokenIf(k token.Kind) (token.Token, error) {
	p, err := lx.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if p.Kind == k {
		return lx.Next()
	}
	return token.Token{Kind: token.Nop, Span: source.Span{Start: p.Span.Start, End: p.Span.Start}}, nil
}
