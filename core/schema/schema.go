// Package schema works with the $jsonSchema validation descriptors attached
// to our collections: it extracts date-typed field paths and coerces the
// matching string values of raw documents into time.Time before insertion.
package schema

import (
	"time"
)

// FieldSet holds dot-joined field paths (e.g. "profile.joinedAt").
type FieldSet map[string]struct{}

func (fs FieldSet) Has(path string) bool {
	_, ok := fs[path]
	return ok
}

func (fs FieldSet) Add(path string) {
	fs[path] = struct{}{}
}

// DateFields extracts all property paths with bsonType "date" from a schema.
// Nested properties compose their path with "." (a key containing "." itself
// produces an ambiguous path; schemas are expected not to use such keys).
func DateFields(schema map[string]interface{}) FieldSet {
	fields := make(FieldSet)
	props, _ := schema["properties"].(map[string]interface{})
	collectDateFields(props, "", fields)
	return fields
}

func collectDateFields(props map[string]interface{}, prefix string, out FieldSet) {
	for key, node := range props {
		prop, ok := node.(map[string]interface{})
		if !ok {
			continue
		}
		if bsonType, _ := prop["bsonType"].(string); bsonType == "date" {
			out.Add(prefix + key)
		}
		// check nested properties (e.g. profile)
		if nested, ok := prop["properties"].(map[string]interface{}); ok {
			collectDateFields(nested, prefix+key+".", out)
		}
	}
}

// ConvertDates rewrites, in place, the string values of doc whose dot-joined
// path is listed in dateFields into time.Time. Nested documents and documents
// inside arrays are walked recursively; anything that does not parse as an
// ISO-8601 timestamp is left untouched. The top-level call passes prefix "".
func ConvertDates(doc map[string]interface{}, dateFields FieldSet, prefix string) map[string]interface{} {
	for key, val := range doc {
		fullKey := prefix + key
		switch v := val.(type) {
		case string:
			if dateFields.Has(fullKey) {
				if ts, err := ParseTimestamp(v); err == nil {
					doc[key] = ts
				}
			}
		case map[string]interface{}:
			doc[key] = ConvertDates(v, dateFields, fullKey+".")
		case []interface{}:
			for i, item := range v {
				if sub, ok := item.(map[string]interface{}); ok {
					v[i] = ConvertDates(sub, dateFields, fullKey+".")
				}
			}
		}
	}
	return doc
}

// timestampLayouts are tried in order; zone-less values are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, err
}
