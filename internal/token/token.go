package token

import (
	"strconv"
	"strings"

	"fitscript/internal/source"
)

// Dataset selector sentinels carried in Token.Index.
const (
	// DatasetAll is the index carried by "@*".
	DatasetAll int64 = -1
	// DatasetNew is the index carried by "@+".
	DatasetNew int64 = -2
)

// Token is a single classified span of input. Immutable once produced.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string  // verbatim input text, including sigils and quotes
	Value float64 // numeric payload for Number tokens
	Index int64   // dataset index or sentinel for Dataset tokens
}

// StringValue returns the payload of the token with sigils and quotes
// stripped: 'abc' -> abc, $var -> var, %f -> f. Other kinds return the
// verbatim text.
func (t Token) StringValue() string {
	switch t.Kind {
	case QString:
		return strings.TrimSuffix(strings.TrimPrefix(t.Text, "'"), "'")
	case Varname, Funcname:
		return t.Text[1:]
	default:
		return t.Text
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LtEq, GtEq, NotEq, EqEq, Append, Dots, PlusMinus, PlusAssign, MinusAssign,
		LParen, RParen, LBracket, RBracket, LBrace, RBrace, Plus, Minus, Star,
		Slash, Caret, Lt, Gt, Assign, Comma, Semicolon, Dot, Colon, Tilde,
		Question, Bang:
		return true
	default:
		return false
	}
}

// Describe renders the token for diagnostics: the kind label plus the
// payload where the payload is not implied by the kind.
func Describe(t Token) string {
	s := t.Kind.String()
	switch t.Kind {
	case QString, Varname, Funcname, Lname, Cname, Uletter, Word, Rest:
		return s + " \"" + t.Text + "\""
	case Number:
		return s + " " + strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Dataset:
		switch t.Index {
		case DatasetAll:
			return s + " '*'"
		case DatasetNew:
			return s + " '+'"
		default:
			return s + " " + strconv.FormatInt(t.Index, 10)
		}
	default:
		return s
	}
}
