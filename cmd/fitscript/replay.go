package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [session]",
	Short: "Show recorded edit sessions from the audit log",
	Long:  `Replay lists recorded sessions, or prints one session's commands in execution order`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	store, err := sess.openAudit()
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("no audit log configured (set [session].audit_log in fitscript.toml)")
	}
	defer store.Close()

	if len(args) == 0 {
		ids, err := store.Sessions()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(os.Stdout, id)
		}
		return nil
	}

	entries, err := store.Replay(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no such session: %s", args[0])
	}
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, e := range entries {
		mark := ok("ok  ")
		if !e.OK {
			mark = bad("fail")
		}
		fmt.Fprintf(os.Stdout, "%4d %s %s  %s\n", e.Seq, e.At.Local().Format("15:04:05"), mark, e.Command)
		if e.Error != "" {
			fmt.Fprintf(os.Stdout, "          %s\n", bad(e.Error))
		}
	}
	return nil
}
