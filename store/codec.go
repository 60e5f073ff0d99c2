package store

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/josephgoksu/todolist/models"
)

// ErrCorrupt is wrapped by every decode failure of the persisted blob.
var ErrCorrupt = errors.New("corrupt task data")

// Encode serializes tasks as a JSON array, then as standard base64 text.
func Encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// Decode reverses Encode: base64 first, then the structured layer.
// The decoded JSON must satisfy the task schema and carry unique ids.
func Decode(data []byte) ([]models.Task, error) {
	text := bytes.TrimSpace(data)
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, text)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrCorrupt, err)
	}
	raw = raw[:n]
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", ErrCorrupt)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrCorrupt, err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}
