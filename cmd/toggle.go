/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

var toggleStatus string

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Aliases: []string{"done"},
	Short:   "Mark a todo completed or not completed",
	Long: `Set a todo's status. Without --status the current status is flipped.

Examples:
  todolist toggle 2
  todolist toggle 2 --status 0`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().StringVarP(&toggleStatus, "status", "s", "", "status code (0 Completed, 1 Not Completed)")
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, tasks := loadCollection()

	var task models.Task
	if cmd.Flags().Changed("status") {
		status, err := models.ParseStatusCode(toggleStatus)
		if err != nil {
			return err
		}
		task, err = tasks.SetStatus(id, status)
		if err != nil {
			return err
		}
	} else {
		task, err = tasks.Toggle(id)
		if err != nil {
			return err
		}
	}

	if err := saveCollection(s, tasks); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ Todo %d is now %s.", id, task.Status.Label()))
	return nil
}
