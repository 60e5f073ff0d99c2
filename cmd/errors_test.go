package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/josephgoksu/todolist/internal/repl"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/viper"
)

func TestPrintError(t *testing.T) {
	ui.SetColor(false)

	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "normal mode without error",
			userMsg:      "User friendly message",
			technicalErr: nil,
			verbose:      false,
			expectedOut:  "User friendly message",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      true,
			expectedOut:  "Error: technical details",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      false,
			expectedOut:  "User friendly message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			orig := errOut
			errOut = &buf
			defer func() { errOut = orig }()

			PrintError(tt.userMsg, tt.technicalErr)

			output := strings.TrimSpace(buf.String())
			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("PrintError() output = %q, want to contain %q", output, tt.expectedOut)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: disk full", repl.ErrSaveFailed), want: "❌ Failed to write to file."},
		{err: fmt.Errorf("%w: id 4", store.ErrNotFound), want: "❌ Todo ID not found."},
		{err: fmt.Errorf("decode todo.json: %w", store.ErrCorrupt), want: "❌ Todo file is corrupt."},
		{err: errors.New("boom"), want: "❌ boom"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

// testError is a simple error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
