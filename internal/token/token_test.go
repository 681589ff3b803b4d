package token_test

import (
	"testing"

	"fitscript/internal/token"
)

func TestKindLabels(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want string
	}{
		{token.Lname, "lower_case_name"},
		{token.Cname, "CamelCaseName"},
		{token.Uletter, "Upper-case-letter"},
		{token.QString, "'quoted-string'"},
		{token.Varname, "$variable_name"},
		{token.Funcname, "%func_name"},
		{token.Number, "number"},
		{token.Dataset, "@dataset"},
		{token.Word, "word"},
		{token.Rest, "rest-of-line"},
		{token.LtEq, "<="},
		{token.GtEq, ">="},
		{token.NotEq, "!="},
		{token.EqEq, "=="},
		{token.Append, ">>"},
		{token.Dots, ".."},
		{token.PlusMinus, "+-"},
		{token.PlusAssign, "+="},
		{token.MinusAssign, "-="},
		{token.Caret, "^"},
		{token.Tilde, "~"},
		{token.Nop, "Nop"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestStringValue(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.QString, Text: "'abc'"}, "abc"},
		{token.Token{Kind: token.Varname, Text: "$foo"}, "foo"},
		{token.Token{Kind: token.Funcname, Text: "%f1"}, "f1"},
		{token.Token{Kind: token.Lname, Text: "guess"}, "guess"},
	}
	for _, c := range cases {
		if got := c.tok.StringValue(); got != c.want {
			t.Errorf("StringValue(%q) = %q, want %q", c.tok.Text, got, c.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Varname, Text: "$a"}, `$variable_name "$a"`},
		{token.Token{Kind: token.Number, Value: 1.5}, "number 1.5"},
		{token.Token{Kind: token.Dataset, Index: token.DatasetAll}, "@dataset '*'"},
		{token.Token{Kind: token.Dataset, Index: token.DatasetNew}, "@dataset '+'"},
		{token.Token{Kind: token.Dataset, Index: 3}, "@dataset 3"},
		{token.Token{Kind: token.Comma, Text: ","}, ","},
	}
	for _, c := range cases {
		if got := token.Describe(c.tok); got != c.want {
			t.Errorf("Describe = %q, want %q", got, c.want)
		}
	}
}
