/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

var listJSON bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all todos",
	Long: `List all todos in the order they were added.

Examples:
  todolist list
  todolist list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print todos as a JSON array")
}

func runList(cmd *cobra.Command, args []string) error {
	_, tasks := loadCollection()
	out := cmd.OutOrStdout()

	if listJSON {
		return printJSON(out, tasks.Tasks())
	}

	if tasks.Len() == 0 {
		fmt.Fprintln(out, "📭 No todos found.")
		return nil
	}
	fmt.Fprint(out, ui.TaskTable(tasks.Tasks()))
	return nil
}
