package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fitscript/internal/reconcile"
	"fitscript/internal/registry"
	"fitscript/internal/tplate"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] old new",
	Short: "Show the commands that turn one definition set into another",
	Long:  `Diff parses two definition scripts and prints the define/undefine sequence converging the first to the second`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().Bool("bare", false, "diff the scripts alone, without the builtin templates")
}

func runDiff(cmd *cobra.Command, args []string) error {
	bare, err := cmd.Flags().GetBool("bare")
	if err != nil {
		return fmt.Errorf("failed to get bare flag: %w", err)
	}

	oldSet, err := loadTemplateSet(args[0], bare)
	if err != nil {
		return err
	}
	newSet, err := loadTemplateSet(args[1], bare)
	if err != nil {
		return err
	}

	cmds, err := reconcile.Reconcile(oldSet, newSet)
	if err != nil {
		return err
	}
	undef := color.New(color.FgRed).SprintFunc()
	def := color.New(color.FgGreen).SprintFunc()
	for _, c := range cmds {
		if len(c) > 2 && c[0] == 'u' {
			fmt.Fprintln(os.Stdout, undef(c))
		} else {
			fmt.Fprintln(os.Stdout, def(c))
		}
	}
	return nil
}

// loadTemplateSet parses a script into a template set, optionally
// layered over the builtins. A definition with a builtin's name
// replaces it.
func loadTemplateSet(path string, bare bool) ([]tplate.Template, error) {
	text, err := readInput(path)
	if err != nil {
		return nil, err
	}
	parsed, err := parseScript(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var set []tplate.Template
	if !bare {
		set = registry.NewWithBuiltins().Snapshot()
	}
	for _, tp := range parsed {
		replaced := false
		for i := range set {
			if set[i].Name == tp.Name {
				set[i] = *tp
				replaced = true
				break
			}
		}
		if !replaced {
			set = append(set, *tp)
		}
	}
	return set, nil
}
