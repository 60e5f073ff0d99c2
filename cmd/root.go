/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// dataFile overrides the task file for this invocation.
	dataFile string
	// verbose enables debug diagnostics on stderr.
	verbose bool
	// noColor disables ANSI styling even on a terminal.
	noColor bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it opens the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "todolist keeps a personal todo list in a local file.",
	Long: `todolist is a single-user todo manager for the terminal.

Run it without arguments for the numbered interactive menu, or use the
subcommands to add, edit, delete and list todos in one shot.

Todos are kept in todo.json in the working directory unless --file,
the data.file config key or TODOLIST_DATA_FILE says otherwise.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetCommand(cmd.CommandPath())
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// SIGINT is left to the runtime, so Ctrl-C at a prompt ends the process
// before the command in progress can save anything.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		HandleFatalError(userMessage(err), err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.todolist.yaml or ./.todolist.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", config.DefaultDataFile, "task data file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag(config.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(config.KeyDataFile, rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
}
