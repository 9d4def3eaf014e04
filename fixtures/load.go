package fixtures

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/schema"
)

// LoadFile reads a sample-data JSON file mapping collection names to document
// lists and converts each document's date-typed string fields according to
// that collection's validator. Collections without a matching validator are
// skipped with a warning.
func LoadFile(path string, validators map[string]schema.Validator, logger core.Logger) (map[string][]map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sample data file %s", path)
	}
	data := make(map[string][]map[string]interface{})
	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "parsing sample data file %s", path)
	}
	return Convert(data, validators, logger), nil
}

// Convert applies each collection's schema date conversion to its documents.
func Convert(data map[string][]map[string]interface{}, validators map[string]schema.Validator, logger core.Logger) map[string][]map[string]interface{} {
	converted := make(map[string][]map[string]interface{}, len(data))
	for name, docs := range data {
		validator, ok := validators[name]
		if !ok {
			if logger != nil {
				logger.Warn("no validator for collection " + name + ", skipping")
			}
			continue
		}
		dateFields := validator.DateFields()
		for _, doc := range docs {
			schema.ConvertDates(doc, dateFields, "")
		}
		converted[name] = docs
	}
	return converted
}
