package token

// Kind represents the category of an input token.
type Kind uint8

const (
	// Nop marks end of input or a '#' comment: nothing left to read, not an error.
	Nop Kind = iota

	// Lname represents a lower_case_name token.
	Lname
	// Cname represents a CamelCaseName token.
	Cname
	// Uletter represents a single upper-case letter token.
	Uletter
	// QString represents a 'quoted-string' token.
	QString
	// Varname represents a $variable_name token.
	Varname
	// Funcname represents a %func_name token.
	Funcname
	// Number represents a floating-point number token.
	Number
	// Dataset represents a @dataset selector token.
	Dataset
	// Word represents a bare word consumed up to whitespace, ';' or '#'.
	Word
	// Rest represents the rest of a statement or line consumed as one token.
	Rest

	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// NotEq represents the not equal operator token ('!=' and '<>' both map here).
	NotEq // !=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Append represents the append operator token.
	Append // >>
	// Dots represents the range/ellipsis token ('..' with an optional third dot).
	Dots // ..
	// PlusMinus represents the plus minus token.
	PlusMinus // +-
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Caret represents the power operator token.
	Caret // ^
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// Assign represents the assign operator token.
	Assign // =
	// Comma represents the comma token.
	Comma // ,
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Colon represents the colon token.
	Colon // :
	// Tilde represents the tilde token.
	Tilde // ~
	// Question represents the question mark token.
	Question // ?
	// Bang represents the bang token.
	Bang // !
)

// labels maps each Kind to the human-readable text used in syntax errors.
var labels = [...]string{
	Nop:      "Nop",
	Lname:    "lower_case_name",
	Cname:    "CamelCaseName",
	Uletter:  "Upper-case-letter",
	QString:  "'quoted-string'",
	Varname:  "$variable_name",
	Funcname: "%func_name",
	Number:   "number",
	Dataset:  "@dataset",
	Word:     "word",
	Rest:     "rest-of-line",

	LtEq:        "<=",
	GtEq:        ">=",
	NotEq:       "!=",
	EqEq:        "==",
	Append:      ">>",
	Dots:        "..",
	PlusMinus:   "+-",
	PlusAssign:  "+=",
	MinusAssign: "-=",

	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Caret:     "^",
	Lt:        "<",
	Gt:        ">",
	Assign:    "=",
	Comma:     ",",
	Semicolon: ";",
	Dot:       ".",
	Colon:     ":",
	Tilde:     "~",
	Question:  "?",
	Bang:      "!",
}

// String returns the human-readable label for the kind.
func (k Kind) String() string {
	if int(k) < len(labels) && labels[k] != "" {
		return labels[k]
	}
	return "unknown"
}
