package task

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskSchema is the persisted blob contract: records that do not conform are
// rejected on load instead of trusting ambient shape.
const taskSchema = `{
	"type": "object",
	"required": ["schema_version", "tasks"],
	"properties": {
		"schema_version": {"const": 1},
		"tasks": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "text", "date", "completed"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"text": {"type": "string", "minLength": 1},
					"date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
					"completed": {"type": "boolean"}
				}
			}
		}
	}
}`

var compiledSchema = jsonschema.MustCompileString("tasks.schema.json", taskSchema)

func validate(f taskFile) bool {
	data, err := json.Marshal(f)
	if err != nil {
		return false
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	return compiledSchema.Validate(doc) == nil
}
