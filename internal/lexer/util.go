package lexer

// ASCII classifiers. The token grammar is byte-oriented; no Unicode
// identifiers exist in this language.

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isAlpha(b byte) bool { return isUpper(b) || isLower(b) }

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }
