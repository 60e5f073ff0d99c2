/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

var exportFormat string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print all todos as plain JSON, YAML or TOML",
	Long: `Print every todo in a readable format. The data file itself is never changed.

Examples:
  todolist export
  todolist export --format yaml > todos.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, tasks := loadCollection()
		return store.Export(cmd.OutOrStdout(), tasks.Tasks(), exportFormat)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", store.FormatJSON, "output format: json, yaml or toml")
}
