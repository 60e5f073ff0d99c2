package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskListSchemaURL = "todolist-tasks.schema.json"

// taskListSchema describes the structured layer of the data file.
const taskListSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "description", "status", "priority", "created"],
    "properties": {
      "id": {"type": "integer", "minimum": 0, "maximum": 4294967295},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "status": {"enum": ["Completed", "NotCompleted"]},
      "priority": {"enum": ["High", "Medium", "Low"]},
      "created": {"type": "string"}
    }
  }
}`

var compiledTaskListSchema = jsonschema.MustCompileString(taskListSchemaURL, taskListSchema)

// validateSchema checks raw JSON against the task list schema.
func validateSchema(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	if err := compiledTaskListSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
