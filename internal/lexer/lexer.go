package lexer

import (
	"fitscript/internal/diag"
	"fitscript/internal/source"
	"fitscript/internal/token"
)

// Lexer scans tokens out of a single immutable input string. It keeps a
// single token of lookahead: the cursor is either at a fresh read position
// or one buffered token is pending. There is no deeper rewind; no rule in
// the grammar needs one.
type Lexer struct {
	input   []byte
	cursor  Cursor
	look    *token.Token // buffered lookahead token, nil when fresh read needed
	lookErr error        // buffered lookahead failure, reported until consumed
}

// New creates a lexer over input.
func New(input string) *Lexer {
	buf := []byte(input)
	return &Lexer{
		input:  buf,
		cursor: NewCursor(buf),
	}
}

// Input returns the full input string being scanned.
func (lx *Lexer) Input() string {
	return string(lx.input)
}

// Next consumes and returns the next token. At end of input (or at a '#'
// comment) it returns a zero-length Nop token, repeatedly.
func (lx *Lexer) Next() (token.Token, error) {
	if err := lx.fill(false); err != nil {
		lx.lookErr = nil
		return token.Token{}, err
	}
	tok := *lx.look
	lx.look = nil
	return tok, nil
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token and do not advance the cursor.
func (lx *Lexer) Peek() (token.Token, error) {
	if err := lx.fill(false); err != nil {
		return token.Token{}, err
	}
	return *lx.look, nil
}

// PushBack rewinds the cursor to the start of tok, which must be a token
// previously returned by this lexer. Only a single level of undo is
// supported.
func (lx *Lexer) PushBack(tok token.Token) {
	lx.cursor.Reset(Mark(tok.Span.Start))
	lx.look = nil
	lx.lookErr = nil
}

// NextGlob re-reads the upcoming token with glob mode enabled, allowing '*'
// inside $name and %name identifiers. Any buffered lookahead is discarded
// and re-read.
func (lx *Lexer) NextGlob() (token.Token, error) {
	if lx.look != nil {
		lx.cursor.Reset(Mark(lx.look.Span.Start))
		lx.look = nil
	}
	lx.lookErr = nil
	return lx.readToken(true)
}

// WordToken reads one bare word: the next token extended to the nearest
// whitespace, ';' or '#'. Quoted strings and Nop pass through unchanged.
func (lx *Lexer) WordToken() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	if t.Kind == token.QString || t.Kind == token.Nop {
		return t, nil
	}
	for !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) &&
		lx.cursor.Peek() != ';' && lx.cursor.Peek() != '#' {
		lx.cursor.Bump()
	}
	t.Kind = token.Word
	t.Span.End = lx.cursor.Off
	t.Text = string(lx.input[t.Span.Start:t.Span.End])
	return t, nil
}

// RestOfStatement reads everything up to the next ';', '#' or end of input
// as a single Rest token. Quoted strings and Nop pass through unchanged.
func (lx *Lexer) RestOfStatement() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	if t.Kind == token.QString || t.Kind == token.Nop {
		return t, nil
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != ';' && lx.cursor.Peek() != '#' {
		lx.cursor.Bump()
	}
	t.Kind = token.Rest
	t.Span.End = lx.cursor.Off
	t.Text = string(lx.input[t.Span.Start:t.Span.End])
	return t, nil
}

// RestOfLine consumes everything to the end of input as a single Rest
// token. It never fails: no token classification happens here.
func (lx *Lexer) RestOfLine() token.Token {
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	start := lx.cursor.Off
	if lx.look != nil {
		start = lx.look.Span.Start
	}
	lx.look = nil
	lx.lookErr = nil
	lx.cursor.Off = uint32(len(lx.input))
	sp := source.Span{Start: start, End: lx.cursor.Off}
	return token.Token{Kind: token.Rest, Span: sp, Text: string(lx.input[sp.Start:sp.End])}
}

// fill ensures a buffered lookahead token or error is present.
func (lx *Lexer) fill(glob bool) error {
	if lx.lookErr != nil {
		return lx.lookErr
	}
	if lx.look != nil {
		return nil
	}
	t, err := lx.readToken(glob)
	if err != nil {
		lx.lookErr = err
		return err
	}
	lx.look = &t
	return nil
}

// SyntaxError builds a grammar error at the current cursor position,
// carrying the offset and up to 10 characters of left context.
func (lx *Lexer) SyntaxError(format string, args ...any) *diag.Error {
	return diag.NewSyntax(diag.SynUnexpectedToken, string(lx.input), int(lx.cursor.Off), format, args...)
}

func (lx *Lexer) lexError(code diag.Code, pos int, format string, args ...any) *diag.Error {
	return diag.NewSyntax(code, string(lx.input), pos, format, args...)
}
