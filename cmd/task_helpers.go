package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephgoksu/todolist/internal/repl"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
)

// openStore returns the file store for this invocation.
func openStore() *store.FileStore {
	return store.NewOsFileStore(dataPath())
}

// loadCollection opens the store and loads its collection. Like the menu,
// one-shot commands treat an unreadable file as empty.
func loadCollection() (*store.FileStore, *store.Collection) {
	s := openStore()
	return s, store.NewCollection(s.Load())
}

// saveCollection persists c, marking failures as fatal.
func saveCollection(s store.TaskStore, c *store.Collection) error {
	if err := s.Save(c.Tasks()); err != nil {
		return fmt.Errorf("%w: %w", repl.ErrSaveFailed, err)
	}
	return nil
}

// parseID parses a positional todo id the same way the menu does.
func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(arg), "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return uint32(id), nil
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, ui.StyleSuccess.Render(msg))
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
