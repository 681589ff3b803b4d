package diag

import (
	"errors"
	"fmt"
)

// Error is the typed failure value surfaced by the tokenizer, parsers,
// registry and reconciler. Positional errors (Pos >= 0) render the byte
// offset and up to 10 characters of left context.
type Error struct {
	Code    Code
	Pos     int    // byte offset into the input, -1 when not positional
	Context string // left context snippet, empty when Pos < 10
	Msg     string
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		return e.Msg
	}
	if e.Context != "" {
		return fmt.Sprintf("at %d, near '%s': %s", e.Pos, e.Context, e.Msg)
	}
	return fmt.Sprintf("at %d: %s", e.Pos, e.Msg)
}

// New returns a non-positional error.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Pos: -1, Msg: fmt.Sprintf(format, args...)}
}

// NewSyntax returns a positional error. input is the full buffer being
// scanned; pos is the cursor offset the error was raised at.
func NewSyntax(code Code, input string, pos int, format string, args ...any) *Error {
	ctx := ""
	if pos >= 10 {
		ctx = input[pos-10 : pos]
	}
	return &Error{Code: code, Pos: pos, Context: ctx, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err, or UnknownCode if err is not a *Error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
