/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

var (
	editTitle       string
	editDescription string
	editStatus      string
	editPriority    string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a todo's title, description, status and priority",
	Long: `Replace every editable field of a todo. The id and creation time never change.

Example:
  todolist edit 3 --title "Call mum" --description "" --status 1 --priority 2`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "new status code (0 Completed, 1 Not Completed)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "new priority code (1 High, 2 Medium, 3 Low)")
	for _, name := range []string{"title", "description", "status", "priority"} {
		_ = editCmd.MarkFlagRequired(name)
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	status, err := models.ParseStatusCode(editStatus)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriorityCode(editPriority)
	if err != nil {
		return err
	}

	s, tasks := loadCollection()
	task, err := tasks.UpdateFields(id, strings.TrimSpace(editTitle), strings.TrimSpace(editDescription), status, priority)
	if err != nil {
		return err
	}
	if err := saveCollection(s, tasks); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ Todo %d updated.", id))
	fmt.Fprint(cmd.OutOrStdout(), ui.TaskDetail(task))
	return nil
}
