package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)

// fakeStore is an in-memory TaskStore that records every save.
type fakeStore struct {
	initial []models.Task
	saves   [][]models.Task
	saveErr error
}

func (f *fakeStore) Load() []models.Task { return f.initial }

func (f *fakeStore) Save(tasks []models.Task) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, tasks)
	return nil
}

func seed(ids ...uint32) []models.Task {
	var tasks []models.Task
	for _, id := range ids {
		tasks = append(tasks, models.NewTask(id, "task", "desc", models.StatusNotCompleted, models.PriorityMedium, fixedNow))
	}
	return tasks
}

func runScript(t *testing.T, s store.TaskStore, lines ...string) (*Driver, string, error) {
	t.Helper()
	ui.SetColor(false)
	var out bytes.Buffer
	d := New(s, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, WithClock(func() time.Time { return fixedNow }))
	err := d.Run(context.Background())
	return d, out.String(), err
}

func TestDriver_AddTask(t *testing.T) {
	fs := &fakeStore{initial: seed(2, 5, 3)}

	d, out, err := runScript(t, fs, "1", "  Buy milk ", "semi-skimmed", "1", "2", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "✅ Todo added successfully!")
	assert.Contains(t, out, "👋 Exiting...")
	require.Len(t, fs.saves, 1)

	tasks := d.Tasks()
	require.Len(t, tasks, 4)
	added := tasks[3]
	assert.Equal(t, uint32(6), added.ID)
	assert.Equal(t, "Buy milk", added.Title)
	assert.Equal(t, "semi-skimmed", added.Description)
	assert.Equal(t, models.StatusNotCompleted, added.Status)
	assert.Equal(t, models.PriorityMedium, added.Priority)
	assert.Equal(t, "2025-03-04 05:06:07", added.Created)
	assert.Equal(t, tasks, fs.saves[0])
}

func TestDriver_AddRejectsInvalidCodes(t *testing.T) {
	fs := &fakeStore{}

	d, out, err := runScript(t, fs,
		"1", "t", "d", "7", // bad status
		"1", "t", "d", "0", "9", // bad priority
		"6")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ Invalid status value.")
	assert.Contains(t, out, "❌ Invalid priority value.")
	assert.Empty(t, fs.saves)
	assert.Empty(t, d.Tasks())
}

func TestDriver_InvalidMenuInput(t *testing.T) {
	fs := &fakeStore{}

	_, out, err := runScript(t, fs, "abc", "9", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ Invalid input, please enter a number.")
	assert.Contains(t, out, "❌ Invalid option.")
	assert.Equal(t, 3, strings.Count(out, "1. Add Todo"), "menu is shown before every choice")
}

func TestDriver_ViewEmptyAndPopulated(t *testing.T) {
	_, out, err := runScript(t, &fakeStore{}, "2", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "📭 No todos found.")

	tasks := seed(1, 2)
	tasks[1].Title = "second"
	_, out, err = runScript(t, &fakeStore{initial: tasks}, "2", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "📋 Todos:")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "2025-03-04 05:06:07")
}

func TestDriver_EditPreservesIdentity(t *testing.T) {
	fs := &fakeStore{initial: seed(1, 2, 3)}
	before := fs.initial[1]

	d, out, err := runScript(t, fs, "3", "2", "New title", "New desc", "0", "1", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Todo updated.")

	edited := d.Tasks()[1]
	assert.Equal(t, before.ID, edited.ID)
	assert.Equal(t, before.Created, edited.Created)
	assert.Equal(t, "New title", edited.Title)
	assert.Equal(t, "New desc", edited.Description)
	assert.Equal(t, models.StatusCompleted, edited.Status)
	assert.Equal(t, models.PriorityHigh, edited.Priority)
	assert.Len(t, fs.saves, 1)
}

func TestDriver_EditInvalidFieldsAbort(t *testing.T) {
	fs := &fakeStore{initial: seed(1)}

	d, out, err := runScript(t, fs,
		"3", "x", // not a number
		"3", "1", "t", "d", "5", // bad status
		"3", "1", "t", "d", "1", "0", // bad priority
		"6")
	require.NoError(t, err)

	assert.Contains(t, out, "❌ Invalid input.")
	assert.Contains(t, out, "❌ Invalid status.")
	assert.Contains(t, out, "❌ Invalid priority.")
	assert.Empty(t, fs.saves)
	assert.Equal(t, seed(1), d.Tasks())
}

func TestDriver_DeleteRemovesExactlyOne(t *testing.T) {
	fs := &fakeStore{initial: seed(1, 2, 3)}

	d, out, err := runScript(t, fs, "4", "2", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "🗑️ Todo deleted.")
	var ids []uint32
	for _, task := range d.Tasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []uint32{1, 3}, ids)
	assert.Len(t, fs.saves, 1)
}

func TestDriver_DeleteThenAddReusesID(t *testing.T) {
	fs := &fakeStore{initial: seed(1, 2, 3)}

	d, _, err := runScript(t, fs, "4", "3", "1", "again", "", "1", "3", "6")
	require.NoError(t, err)

	tasks := d.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, uint32(3), tasks[2].ID)
	assert.Equal(t, "again", tasks[2].Title)
}

func TestDriver_ToggleStatus(t *testing.T) {
	fs := &fakeStore{initial: seed(1)}

	d, out, err := runScript(t, fs, "5", "1", "0", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "✅ Todo status updated.")
	assert.Equal(t, models.StatusCompleted, d.Tasks()[0].Status)
	assert.Len(t, fs.saves, 1)
}

func TestDriver_NotFoundIsNonFatal(t *testing.T) {
	fs := &fakeStore{initial: seed(1, 2)}

	d, out, err := runScript(t, fs, "3", "42", "4", "42", "5", "42", "6")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "❌ Todo ID not found."))
	assert.NotContains(t, out, "Enter Updated title", "edit stops before field prompts")
	assert.Empty(t, fs.saves)
	assert.Equal(t, seed(1, 2), d.Tasks())
}

func TestDriver_NotFoundLeavesFileUnchanged(t *testing.T) {
	mem := afero.NewMemMapFs()
	fileStore := store.NewFileStore(mem, "todo.json")
	require.NoError(t, fileStore.Save(seed(1, 2, 3)))
	before, err := afero.ReadFile(mem, "todo.json")
	require.NoError(t, err)

	_, _, err = runScript(t, fileStore, "3", "9", "4", "9", "5", "9", "6")
	require.NoError(t, err)

	after, err := afero.ReadFile(mem, "todo.json")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDriver_PersistsThroughFileStore(t *testing.T) {
	mem := afero.NewMemMapFs()
	fileStore := store.NewFileStore(mem, "todo.json")

	_, _, err := runScript(t, fileStore, "1", "one", "", "1", "1", "1", "two", "", "0", "3", "6")
	require.NoError(t, err)

	reloaded := store.NewFileStore(mem, "todo.json").Load()
	require.Len(t, reloaded, 2)
	assert.Equal(t, "one", reloaded[0].Title)
	assert.Equal(t, "two", reloaded[1].Title)
	assert.Equal(t, models.StatusCompleted, reloaded[1].Status)
}

func TestDriver_SaveFailureIsReturned(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("disk full")}

	_, out, err := runScript(t, fs, "1", "t", "d", "1", "1", "6")

	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.ErrorContains(t, err, "disk full")
	assert.NotContains(t, out, "✅ Todo added successfully!")
	assert.NotContains(t, out, "👋 Exiting...", "loop stops at the failed save")
}

func TestDriver_EOFEndsCleanly(t *testing.T) {
	fs := &fakeStore{initial: seed(1)}

	ui.SetColor(false)
	var out bytes.Buffer
	// Input ends in the middle of an add command.
	d := New(fs, strings.NewReader("1\npartial title"), &out)
	err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, fs.saves)
	assert.Len(t, d.Tasks(), 1)
}

func TestDriver_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(&fakeStore{}, strings.NewReader("6\n"), &bytes.Buffer{})
	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriver_MenuChoiceMustBeUnsigned32(t *testing.T) {
	for _, choice := range []string{"-1", "99999999999", "1.5", "+"} {
		t.Run(choice, func(t *testing.T) {
			_, out, err := runScript(t, &fakeStore{}, choice, "6")
			require.NoError(t, err)
			assert.Contains(t, out, "❌ Invalid input, please enter a number.")
			assert.NotContains(t, out, "❌ Invalid option.")
		})
	}

	_, out, err := runScript(t, &fakeStore{}, "0", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ Invalid option.")

	_, out, err = runScript(t, &fakeStore{}, "+6")
	require.NoError(t, err)
	assert.Contains(t, out, "👋 Exiting...")
}

func TestDriver_IDAcceptsLeadingPlus(t *testing.T) {
	fs := &fakeStore{initial: seed(1, 3)}

	d, out, err := runScript(t, fs, "4", "+3", "4", "-1", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "🗑️ Todo deleted.")
	assert.Contains(t, out, "❌ Invalid input.")
	require.Len(t, d.Tasks(), 1)
	assert.Equal(t, uint32(1), d.Tasks()[0].ID)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "7", want: 7},
		{in: " 12 ", want: 12},
		{in: "+3", want: 3},
		{in: "4294967295", want: 4294967295},
		{in: "4294967296", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "++3", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
