package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fitscript/internal/lexer"
	"fitscript/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a definition script",
	Long:  `Tokenize breaks a script into its constituent tokens, one line at a time ("-" reads stdin)`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("glob", false, "allow '*' inside variable and function names")
}

type tokenRecord struct {
	Line  int     `json:"line"`
	Start uint32  `json:"start"`
	End   uint32  `json:"end"`
	Kind  string  `json:"kind"`
	Text  string  `json:"text"`
	Value float64 `json:"value,omitempty"`
	Index int64   `json:"index"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	glob, err := cmd.Flags().GetBool("glob")
	if err != nil {
		return fmt.Errorf("failed to get glob flag: %w", err)
	}

	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	records, err := tokenizeScript(text, glob)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		writeTokensPretty(os.Stdout, records)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func tokenizeScript(text string, glob bool) ([]tokenRecord, error) {
	var records []tokenRecord
	for i, line := range strings.Split(text, "\n") {
		lx := lexer.New(line)
		for {
			var tok token.Token
			var err error
			if glob {
				tok, err = lx.NextGlob()
			} else {
				tok, err = lx.Next()
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if tok.Kind == token.Nop {
				break
			}
			rec := tokenRecord{
				Line:  i + 1,
				Start: tok.Span.Start,
				End:   tok.Span.End,
				Kind:  tok.Kind.String(),
				Text:  tok.Text,
			}
			if tok.Kind == token.Number {
				rec.Value = tok.Value
			}
			if tok.Kind == token.Dataset {
				rec.Index = tok.Index
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func writeTokensPretty(out io.Writer, records []tokenRecord) {
	for _, r := range records {
		extra := ""
		switch r.Kind {
		case token.Number.String():
			extra = fmt.Sprintf("  value=%g", r.Value)
		case token.Dataset.String():
			extra = fmt.Sprintf("  index=%d", r.Index)
		}
		fmt.Fprintf(out, "%4d:%-3d %-20s %q%s\n", r.Line, r.Start, r.Kind, r.Text, extra)
	}
}
