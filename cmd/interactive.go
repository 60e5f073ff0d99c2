/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/todolist/internal/repl"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"menu"},
	Short:   "Open the numbered todo menu",
	Long: `Open the numbered menu to add, view, edit, delete and complete todos.
This is also what todolist does when run without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	d := repl.New(openStore(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err := d.Run(cmd.Context()); err != nil {
		LogError("interactive session ended", err)
		return err
	}
	return nil
}
