package store

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/josephgoksu/todolist/models"
)

// ErrNotFound is returned by mutations that reference an unknown id.
var ErrNotFound = errors.New("task not found")

// NextID returns max(existing ids)+1, or 1 for an empty collection.
// It is recomputed on every call, so the id of a deleted maximum is reused.
func NextID(tasks []models.Task) uint32 {
	var maxID uint32
	for _, t := range tasks {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}

// DuplicateIDs returns every id held by more than one task, in first-seen order.
// Such files still load; FindByID then resolves to the first match.
func DuplicateIDs(tasks []models.Task) []uint32 {
	counts := make(map[uint32]int, len(tasks))
	var dups []uint32
	for _, t := range tasks {
		counts[t.ID]++
		if counts[t.ID] == 2 {
			dups = append(dups, t.ID)
		}
	}
	return dups
}

// FindByID returns the index of the task with id.
func FindByID(tasks []models.Task, id uint32) (int, bool) {
	idx := slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
	return idx, idx >= 0
}

// Collection is the ordered in-memory task list. It never persists itself;
// callers save after each successful mutation.
type Collection struct {
	tasks []models.Task
}

// NewCollection wraps tasks, keeping their order.
func NewCollection(tasks []models.Task) *Collection {
	return &Collection{tasks: slices.Clone(tasks)}
}

// Tasks returns a copy of the records in insertion order.
func (c *Collection) Tasks() []models.Task {
	if c.tasks == nil {
		return []models.Task{}
	}
	return slices.Clone(c.tasks)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Get returns the task with id.
func (c *Collection) Get(id uint32) (models.Task, bool) {
	idx, ok := FindByID(c.tasks, id)
	if !ok {
		return models.Task{}, false
	}
	return c.tasks[idx], true
}

// Add appends a new task with the next id and a creation stamp taken from now.
func (c *Collection) Add(title, description string, status models.Status, priority models.Priority, now time.Time) models.Task {
	task := models.NewTask(NextID(c.tasks), title, description, status, priority, now)
	c.tasks = append(c.tasks, task)
	return task
}

// UpdateFields overwrites the editable fields of a task. ID and Created are kept.
func (c *Collection) UpdateFields(id uint32, title, description string, status models.Status, priority models.Priority) (models.Task, error) {
	idx, ok := FindByID(c.tasks, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	t := &c.tasks[idx]
	t.Title = title
	t.Description = description
	t.Status = status
	t.Priority = priority
	return *t, nil
}

// SetStatus overwrites only the status of a task.
func (c *Collection) SetStatus(id uint32, status models.Status) (models.Task, error) {
	idx, ok := FindByID(c.tasks, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	c.tasks[idx].Status = status
	return c.tasks[idx], nil
}

// Toggle flips the status of a task between Completed and NotCompleted.
func (c *Collection) Toggle(id uint32) (models.Task, error) {
	idx, ok := FindByID(c.tasks, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return c.SetStatus(id, c.tasks[idx].Status.Toggle())
}

// Delete removes a task permanently, keeping the relative order of the rest.
func (c *Collection) Delete(id uint32) (models.Task, error) {
	idx, ok := FindByID(c.tasks, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	removed := c.tasks[idx]
	c.tasks = slices.Delete(c.tasks, idx, idx+1)
	return removed, nil
}
