/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

var (
	addTitle       string
	addDescription string
	addStatus      string
	addPriority    string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a todo",
	Long: `Add a todo without opening the menu.

Status codes: 0 Completed, 1 Not Completed.
Priority codes: 1 High, 2 Medium, 3 Low.

Examples:
  todolist add --title "Buy milk"
  todolist add -t "File taxes" -d "before April" -p 1`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "todo title")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "todo description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "1", "status code (0 Completed, 1 Not Completed)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "2", "priority code (1 High, 2 Medium, 3 Low)")
	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	status, err := models.ParseStatusCode(addStatus)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriorityCode(addPriority)
	if err != nil {
		return err
	}

	s, tasks := loadCollection()
	task := tasks.Add(strings.TrimSpace(addTitle), strings.TrimSpace(addDescription), status, priority, time.Now())
	if err := saveCollection(s, tasks); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("✅ Todo added successfully! (ID %d)", task.ID))
	fmt.Fprint(cmd.OutOrStdout(), ui.TaskDetail(task))
	return nil
}
