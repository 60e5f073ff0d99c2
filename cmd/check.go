/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the todo file can be read",
	Long: `Read the todo file strictly and report any problem.

The menu and the other commands treat an unreadable file as an empty list
and overwrite it on the next save. Run check first if todos seem to have
disappeared.

Todos sharing an id are loaded as they are, but only the first of them can
be edited, toggled or deleted. check reports them so the file can be fixed.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := openStore()
	tasks, err := s.LoadStrict()
	if err != nil {
		return err
	}

	reportCrashLogs(cmd)

	var errs []error
	if dups := store.DuplicateIDs(tasks); len(dups) > 0 {
		errs = append(errs, fmt.Errorf("duplicate ids %v", dups))
	}
	for _, task := range tasks {
		if err := models.ValidateStruct(task); err != nil {
			errs = append(errs, fmt.Errorf("todo %d: %w", task.ID, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s has invalid todos: %w", s.Path(), err)
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ %s is valid (%d todos).", s.Path(), len(tasks)))
	return nil
}

// reportCrashLogs warns about crash logs left by earlier runs.
func reportCrashLogs(cmd *cobra.Command) {
	logs, err := logger.ListCrashLogs()
	if err != nil {
		LogError("list crash logs", err)
		return
	}
	if len(logs) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d crash log(s), newest %s\n",
		ui.Icon("⚠", ui.StyleWarning), len(logs), logs[len(logs)-1])
}
