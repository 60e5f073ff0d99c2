// Package repl implements the interactive numbered menu over a task store.
//
// Every command reads all of its fields first and only then mutates the
// collection and saves it, so an aborted or invalid command leaves both the
// collection and the data file untouched.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

// ErrSaveFailed wraps a persistence failure. Callers must abort the process.
var ErrSaveFailed = errors.New("failed to write to file")

// errInputClosed ends the loop when stdin reaches EOF mid-command.
var errInputClosed = errors.New("input closed")

// Menu choices.
const (
	ChoiceAdd = iota + 1
	ChoiceView
	ChoiceEdit
	ChoiceDelete
	ChoiceToggle
	ChoiceExit
)

// User-facing messages.
const (
	msgInvalidChoice   = "❌ Invalid input, please enter a number."
	msgInvalidOption   = "❌ Invalid option."
	msgInvalidInput    = "❌ Invalid input."
	msgInvalidStatus   = "❌ Invalid status value."
	msgInvalidPriority = "❌ Invalid priority value."
	msgBadStatus       = "❌ Invalid status."
	msgBadPriority     = "❌ Invalid priority."
	msgNotFound        = "❌ Todo ID not found."
	msgAdded           = "✅ Todo added successfully!"
	msgUpdated         = "✅ Todo updated."
	msgDeleted         = "🗑️ Todo deleted."
	msgStatusUpdated   = "✅ Todo status updated."
	msgEmpty           = "📭 No todos found."
	msgExit            = "👋 Exiting..."
)

// Driver runs the read-eval loop. It owns the in-memory collection for the
// lifetime of the session.
type Driver struct {
	store store.TaskStore
	tasks *store.Collection
	in    *bufio.Reader
	out   io.Writer
	now   func() time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock overrides the time source used for creation stamps.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// New loads the collection from s and prepares a driver reading from in and writing to out.
func New(s store.TaskStore, in io.Reader, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		store: s,
		tasks: store.NewCollection(s.Load()),
		in:    bufio.NewReader(in),
		out:   out,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Tasks returns the current in-memory collection.
func (d *Driver) Tasks() []models.Task {
	return d.tasks.Tasks()
}

// Run shows the menu until the user exits or input ends. It returns a
// wrapped ErrSaveFailed when the data file cannot be written, or the
// context error if ctx is cancelled between commands.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.printMenu()
		line, err := d.readLine()
		if err != nil {
			return nil
		}

		choice, err := parseNumber(line)
		if err != nil {
			d.fail(msgInvalidChoice)
			continue
		}

		if choice == ChoiceExit {
			d.println(msgExit)
			return nil
		}

		err = d.dispatch(choice)
		switch {
		case errors.Is(err, errInputClosed):
			return nil
		case err != nil:
			return err
		}
	}
}

func (d *Driver) dispatch(choice uint32) error {
	switch choice {
	case ChoiceAdd:
		return d.add()
	case ChoiceView:
		d.view()
		return nil
	case ChoiceEdit:
		return d.edit()
	case ChoiceDelete:
		return d.remove()
	case ChoiceToggle:
		return d.toggle()
	default:
		d.fail(msgInvalidOption)
		return nil
	}
}

func (d *Driver) printMenu() {
	d.println("")
	d.println(ui.StyleHeader.Render("📋 Welcome to the Todo List"))
	d.println("1. Add Todo")
	d.println("2. View Todos")
	d.println("3. Edit Todo")
	d.println("4. Delete Todo")
	d.println("5. Mark Completed/Not Completed")
	d.println("6. Exit")
}

func (d *Driver) add() error {
	title, err := d.prompt("Enter Todo title: ")
	if err != nil {
		return err
	}
	description, err := d.prompt("Enter Todo description: ")
	if err != nil {
		return err
	}
	status, ok, err := d.promptStatus("Enter status (0 for Completed, 1 for Not Completed): ", msgInvalidStatus)
	if err != nil || !ok {
		return err
	}
	priority, ok, err := d.promptPriority("Enter priority (1: High, 2: Medium, 3: Low): ", msgInvalidPriority)
	if err != nil || !ok {
		return err
	}

	task := d.tasks.Add(title, description, status, priority, d.now())
	if err := d.save(); err != nil {
		return err
	}
	slog.Debug("task added", "id", task.ID)
	d.succeed(msgAdded)
	return nil
}

func (d *Driver) view() {
	tasks := d.tasks.Tasks()
	if len(tasks) == 0 {
		d.println(msgEmpty)
		return
	}
	d.println("\n📋 Todos:")
	fmt.Fprint(d.out, ui.TaskTable(tasks))
}

func (d *Driver) edit() error {
	id, ok, err := d.promptExistingID("Enter Todo ID to edit: ")
	if err != nil || !ok {
		return err
	}

	title, err := d.prompt("Enter Updated title: ")
	if err != nil {
		return err
	}
	description, err := d.prompt("Enter Updated description: ")
	if err != nil {
		return err
	}
	status, ok, err := d.promptStatus("Enter Updated status (0: Completed, 1: Not Completed): ", msgBadStatus)
	if err != nil || !ok {
		return err
	}
	priority, ok, err := d.promptPriority("Enter Updated priority (1: High, 2: Medium, 3: Low): ", msgBadPriority)
	if err != nil || !ok {
		return err
	}

	if _, err := d.tasks.UpdateFields(id, title, description, status, priority); err != nil {
		d.fail(msgNotFound)
		return nil
	}
	if err := d.save(); err != nil {
		return err
	}
	slog.Debug("task updated", "id", id)
	d.succeed(msgUpdated)
	return nil
}

func (d *Driver) remove() error {
	id, ok, err := d.promptExistingID("Enter Todo ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if _, err := d.tasks.Delete(id); err != nil {
		d.fail(msgNotFound)
		return nil
	}
	if err := d.save(); err != nil {
		return err
	}
	slog.Debug("task deleted", "id", id)
	d.println(msgDeleted)
	return nil
}

func (d *Driver) toggle() error {
	id, ok, err := d.promptExistingID("Enter Todo ID to update status: ")
	if err != nil || !ok {
		return err
	}
	status, ok, err := d.promptStatus("Enter Updated status (0: Completed, 1: Not Completed): ", msgBadStatus)
	if err != nil || !ok {
		return err
	}
	if _, err := d.tasks.SetStatus(id, status); err != nil {
		d.fail(msgNotFound)
		return nil
	}
	if err := d.save(); err != nil {
		return err
	}
	slog.Debug("task status set", "id", id, "status", status)
	d.succeed(msgStatusUpdated)
	return nil
}

func (d *Driver) save() error {
	if err := d.store.Save(d.tasks.Tasks()); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// promptExistingID reads an id and checks that it exists. ok is false when
// the command should be abandoned; the reason has already been printed.
func (d *Driver) promptExistingID(label string) (id uint32, ok bool, err error) {
	line, err := d.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, err = parseNumber(line)
	if err != nil {
		d.fail(msgInvalidInput)
		return 0, false, nil
	}
	if _, found := d.tasks.Get(id); !found {
		d.fail(msgNotFound)
		return 0, false, nil
	}
	return id, true, nil
}

func (d *Driver) promptStatus(label, invalidMsg string) (models.Status, bool, error) {
	line, err := d.prompt(label)
	if err != nil {
		return 0, false, err
	}
	status, err := models.ParseStatusCode(line)
	if err != nil {
		d.fail(invalidMsg)
		return 0, false, nil
	}
	return status, true, nil
}

func (d *Driver) promptPriority(label, invalidMsg string) (models.Priority, bool, error) {
	line, err := d.prompt(label)
	if err != nil {
		return 0, false, err
	}
	priority, err := models.ParsePriorityCode(line)
	if err != nil {
		d.fail(invalidMsg)
		return 0, false, nil
	}
	return priority, true, nil
}

// parseNumber parses an unsigned 32-bit decimal. One leading "+" is allowed.
func parseNumber(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// prompt prints label and returns the trimmed answer.
func (d *Driver) prompt(label string) (string, error) {
	d.println(label)
	line, err := d.readLine()
	if err != nil {
		return "", errInputClosed
	}
	return strings.TrimSpace(line), nil
}

// readLine returns the next raw line. A final line without a newline is
// still returned; io.EOF is only reported when nothing is left.
func (d *Driver) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	logger.SetLastInput(line)
	return line, nil
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Driver) fail(msg string) {
	d.println(ui.StyleError.Render(msg))
}

func (d *Driver) succeed(msg string) {
	d.println(ui.StyleSuccess.Render(msg))
}
