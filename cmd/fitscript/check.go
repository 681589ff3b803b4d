package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fitscript/internal/command"
	"fitscript/internal/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "Validate definition scripts",
	Long:  `Check runs each script against a scratch template set and reports the first error per file`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 4, "number of files to check in parallel")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}

	var mu sync.Mutex
	failures := make(map[string]error)

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, path := range args {
		path := path
		g.Go(func() error {
			if err := checkOne(path); err != nil {
				mu.Lock()
				failures[path] = err
				mu.Unlock()
			}
			return nil
		})
	}
	// workers never return errors, they report through failures
	_ = g.Wait()

	names := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, p := range args {
		if !seen[p] {
			seen[p] = true
			names = append(names, p)
		}
	}
	sort.Strings(names)

	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	failed := 0
	for _, p := range names {
		if err, isBad := failures[p]; isBad {
			failed++
			fmt.Fprintf(os.Stdout, "%s %s\n    %v\n", bad("FAIL"), p, err)
		} else {
			fmt.Fprintf(os.Stdout, "%s %s\n", ok("ok"), p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(names))
	}
	return nil
}

// checkOne runs one script against a throwaway registry seeded with the
// builtin templates.
func checkOne(path string) error {
	text, err := readInput(path)
	if err != nil {
		return err
	}
	ex := command.NewExecutor(registry.NewWithBuiltins(), nil)
	return ex.RunScript(text)
}
