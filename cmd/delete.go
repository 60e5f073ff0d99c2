/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, tasks := loadCollection()
	if _, err := tasks.Delete(id); err != nil {
		return err
	}
	if err := saveCollection(s, tasks); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Todo %d deleted.\n", id)
	return nil
}
