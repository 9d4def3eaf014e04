package schema

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Validator is a full collection validator document as the engine expects it,
// i.e. {"$jsonSchema": {...}}.
type Validator map[string]interface{}

// JSONSchema returns the inner $jsonSchema descriptor, or nil if absent.
func (v Validator) JSONSchema() map[string]interface{} {
	js, _ := v["$jsonSchema"].(map[string]interface{})
	return js
}

// DateFields extracts the date field paths from the validator's $jsonSchema.
func (v Validator) DateFields() FieldSet {
	js := v.JSONSchema()
	if js == nil {
		return make(FieldSet)
	}
	return DateFields(js)
}

// LoadValidators reads a JSON file mapping collection names to their
// validator documents.
func LoadValidators(path string) (map[string]Validator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema file %s", path)
	}
	validators := make(map[string]Validator)
	if err = json.Unmarshal(raw, &validators); err != nil {
		return nil, errors.Wrapf(err, "parsing schema file %s", path)
	}
	return validators, nil
}
