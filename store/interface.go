package store

import "github.com/josephgoksu/todolist/models"

// TaskStore defines the interface for task persistence.
// The whole collection is read and written in one piece; there are no
// per-record operations at this layer.
type TaskStore interface {
	// Load returns every persisted task in insertion order. Any failure
	// yields an empty collection.
	Load() []models.Task

	// Save replaces the persisted collection with tasks.
	// Callers treat a returned error as fatal.
	Save(tasks []models.Task) error
}
