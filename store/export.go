package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todolist/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// exportDocument wraps the list because TOML has no top-level arrays.
type exportDocument struct {
	Tasks []models.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Export writes tasks in a plain, human-readable format. It never touches the data file.
func Export(w io.Writer, tasks []models.Task, format string) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	doc := exportDocument{Tasks: tasks}

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal TOML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s. Supported formats are json, yaml, toml", format)
	}
	return nil
}
