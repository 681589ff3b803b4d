package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List the available function templates",
	Long:  `List prints the builtin templates plus any definitions from the project file`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	handles := sess.reg.Enumerate()
	switch format {
	case "pretty":
		name := color.New(color.FgCyan, color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()
		for _, h := range handles {
			tp := h.Template()
			fmt.Fprintf(os.Stdout, "%s%s\n", name(tp.Name), strings.TrimPrefix(tp.AsFormula(), tp.Name))
			if tp.Traits != 0 {
				fmt.Fprintf(os.Stdout, "  %s\n", dim("traits: "+tp.Traits.String()))
			}
			if users, _ := sess.reg.UsedBy(tp.Name); len(users) > 0 {
				fmt.Fprintf(os.Stdout, "  %s\n", dim("used by: "+strings.Join(users, ", ")))
			}
		}
		return nil
	case "json":
		records := make([]templateRecord, 0, len(handles))
		for _, h := range handles {
			records = append(records, toRecord(h.Template()))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
