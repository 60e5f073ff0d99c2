package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/afero"
)

const (
	// DefaultDataFile is the data file name used when none is configured.
	DefaultDataFile = "todo.json"
	tempSuffix      = ".tmp"
)

// FileStore implements TaskStore on a single base64-wrapped JSON file.
// It uses an afero.Fs so tests can run against an in-memory filesystem.
type FileStore struct {
	fs   afero.Fs
	path string
}

var _ TaskStore = (*FileStore)(nil)

// NewFileStore creates a store for path on the given filesystem.
func NewFileStore(fsys afero.Fs, path string) *FileStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileStore{fs: fsys, path: path}
}

// NewOsFileStore creates a store backed by the real operating system filesystem.
func NewOsFileStore(path string) *FileStore {
	return NewFileStore(afero.NewOsFs(), path)
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every task from the data file. A missing file, an unreadable
// file, and corrupt content all produce an empty collection; the cause is
// only logged at debug level.
func (s *FileStore) Load() []models.Task {
	tasks, err := s.LoadStrict()
	if err != nil {
		slog.Debug("task file unusable, starting empty", "path", s.path, "error", err)
		return []models.Task{}
	}
	return tasks
}

// LoadStrict is Load without the silent fallback. A missing file is not an
// error; unreadable or corrupt content is.
func (s *FileStore) LoadStrict() ([]models.Task, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save encodes the full collection and replaces the data file. The content
// goes to a temporary file first and is renamed over the target, so readers
// never observe a half-written file.
func (s *FileStore) Save(tasks []models.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tempPath := s.path + tempSuffix
	if err := afero.WriteFile(s.fs, tempPath, data, 0o644); err != nil {
		_ = s.fs.Remove(tempPath)
		return fmt.Errorf("write temporary file %s: %w", tempPath, err)
	}
	if err := s.fs.Rename(tempPath, s.path); err != nil {
		_ = s.fs.Remove(tempPath)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	slog.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}
