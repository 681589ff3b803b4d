package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fitscript/internal/command"
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] file...",
	Short: "Execute definition scripts against the project's template set",
	Long:  `Exec runs scripts in order, records them to the project's audit log and saves the resulting template set`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	store, err := sess.openAudit()
	if err != nil {
		return err
	}
	var rec command.Recorder
	sessionID := ""
	if store != nil {
		defer store.Close()
		sessionID = uuid.NewString()
		rec = store.Session(sessionID)
	}

	ex := command.NewExecutor(sess.reg, rec)
	for _, path := range args {
		text, err := readInput(path)
		if err != nil {
			return err
		}
		if err := ex.RunScript(text); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := sess.saveSnapshot(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if sessionID != "" {
		fmt.Fprintf(os.Stdout, "session %s: %d file(s) applied\n", sessionID, len(args))
	} else {
		fmt.Fprintf(os.Stdout, "%d file(s) applied\n", len(args))
	}
	return nil
}
