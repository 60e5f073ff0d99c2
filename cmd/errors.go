package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/josephgoksu/todolist/internal/repl"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/viper"
)

// errOut is where user-facing errors are written.
var errOut io.Writer = os.Stderr

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(errOut, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(errOut, ui.StyleError.Render(userMsg))
	}
}

// LogError records an error at debug level; it is only visible with --verbose.
func LogError(msg string, err error) {
	if err != nil {
		slog.Debug(msg, "error", err)
		return
	}
	slog.Debug(msg)
}

// userMessage maps an error to the message shown without --verbose.
func userMessage(err error) string {
	switch {
	case errors.Is(err, repl.ErrSaveFailed):
		return "❌ Failed to write to file."
	case errors.Is(err, store.ErrNotFound):
		return "❌ Todo ID not found."
	case errors.Is(err, store.ErrCorrupt):
		return "❌ Todo file is corrupt."
	default:
		return "❌ " + err.Error()
	}
}
