package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fitscript/internal/lexer"
	"fitscript/internal/token"
	"fitscript/internal/tplate"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse template definitions from a script",
	Long:  `Parse reads define statements and prints each template's structure ("-" reads stdin)`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type templateRecord struct {
	Name       string   `json:"name"`
	Fargs      []string `json:"fargs"`
	Defaults   []string `json:"defaults"`
	RHS        string   `json:"rhs"`
	Traits     string   `json:"traits"`
	Components []string `json:"components,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	templates, err := parseScript(text)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		for _, tp := range templates {
			printTemplate(tp)
		}
		return nil
	case "json":
		records := make([]templateRecord, 0, len(templates))
		for _, tp := range templates {
			records = append(records, toRecord(tp))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// parseScript reads template definitions, one or more per line, ';'
// separated. A leading "define" keyword is optional.
func parseScript(text string) ([]*tplate.Template, error) {
	var out []*tplate.Template
	for i, line := range strings.Split(text, "\n") {
		lx := lexer.New(line)
		for {
			p, err := lx.Peek()
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if p.Kind == token.Nop {
				break
			}
			if p.Kind == token.Lname && p.Text == "define" {
				if _, err := lx.Next(); err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
			}
			tp, err := tplate.ParseDefine(lx)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			out = append(out, tp)

			sep, err := lx.TokenIf(token.Semicolon)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if sep.Kind != token.Semicolon {
				break
			}
		}
	}
	return out, nil
}

func toRecord(tp *tplate.Template) templateRecord {
	rec := templateRecord{
		Name:     tp.Name,
		Fargs:    tp.Fargs,
		Defaults: tp.Defvals,
		RHS:      tp.RHS,
		Traits:   tp.Traits.String(),
	}
	for _, c := range tp.Components {
		if c.Sub != "" {
			rec.Components = append(rec.Components, c.Sub)
		}
	}
	return rec
}

func printTemplate(tp *tplate.Template) {
	color.New(color.FgCyan, color.Bold).Print(tp.Name)
	rest := strings.TrimPrefix(tp.AsFormula(), tp.Name)
	fmt.Println(rest)
	if tp.Traits != 0 {
		fmt.Printf("  traits: %s\n", tp.Traits)
	}
	var subs []string
	for _, c := range tp.Components {
		if c.Sub != "" {
			subs = append(subs, c.Sub)
		}
	}
	if len(subs) > 0 {
		fmt.Printf("  components: %s\n", strings.Join(subs, ", "))
	}
}
