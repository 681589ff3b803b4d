package tplate

import (
	"fitscript/internal/lexer"
	"fitscript/internal/token"
)

// splitComponents decomposes a formula into additive components when it
// is a top-level sum (or a split ternary) whose terms reference other
// templates by CamelCase call. A plain expression yields no components.
func splitComponents(rhs string) []Component {
	terms, ok := topLevelTerms(rhs)
	if !ok {
		return nil
	}
	if len(terms) == 1 {
		if branches, ok := splitTernary(terms[0]); ok {
			terms = branches
		}
	}
	comps := make([]Component, 0, len(terms))
	found := false
	for _, term := range terms {
		if name, ok := bareCall(term); ok {
			comps = append(comps, Component{Sub: name})
			found = true
		} else {
			comps = append(comps, Component{Coef: termText(rhs, term)})
		}
	}
	if !found {
		return nil
	}
	return comps
}

// topLevelTerms lexes rhs and splits it on '+' at bracket depth zero.
func topLevelTerms(rhs string) ([][]token.Token, bool) {
	lx := lexer.New(rhs)
	depth := 0
	var terms [][]token.Token
	var cur []token.Token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, false
		}
		if t.Kind == token.Nop {
			break
		}
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Plus:
			if depth == 0 {
				terms = append(terms, cur)
				cur = nil
				continue
			}
		}
		cur = append(cur, t)
	}
	terms = append(terms, cur)
	for _, term := range terms {
		if len(term) == 0 {
			return nil, false
		}
	}
	return terms, true
}

// splitTernary splits "cond ? then : else" at depth zero into the two
// branch token runs (split-function definitions such as SplitGaussian).
func splitTernary(term []token.Token) ([][]token.Token, bool) {
	depth := 0
	q, c := -1, -1
	for i, t := range term {
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Question:
			if depth == 0 && q < 0 {
				q = i
			}
		case token.Colon:
			if depth == 0 && q >= 0 && c < 0 {
				c = i
			}
		}
	}
	if q < 0 || c < 0 || q+1 >= c || c+1 >= len(term) {
		return nil, false
	}
	return [][]token.Token{term[q+1 : c], term[c+1:]}, true
}

// bareCall reports whether term is exactly one CamelName(...) call and
// returns the name.
func bareCall(term []token.Token) (string, bool) {
	if len(term) < 3 ||
		term[0].Kind != token.Cname ||
		term[1].Kind != token.LParen ||
		term[len(term)-1].Kind != token.RParen {
		return "", false
	}
	// the closing paren must match the opening one
	depth := 0
	for i, t := range term[1:] {
		switch t.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		if depth == 0 && i != len(term)-2 {
			return "", false
		}
	}
	return term[0].Text, true
}

func termText(rhs string, term []token.Token) string {
	return rhs[term[0].Span.Start:term[len(term)-1].Span.End]
}
