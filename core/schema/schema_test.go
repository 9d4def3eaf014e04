package schema

import (
	"reflect"
	"testing"
	"time"
)

func TestDateFields(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]interface{}
		want   []string
	}{
		{
			name:   "empty schema",
			schema: map[string]interface{}{},
			want:   []string{},
		},
		{
			name: "top-level date field",
			schema: map[string]interface{}{
				"properties": map[string]interface{}{
					"enrollmentDate": map[string]interface{}{"bsonType": "date"},
					"progress":       map[string]interface{}{"bsonType": "double"},
					"completed":      map[string]interface{}{"bsonType": "bool"},
				},
			},
			want: []string{"enrollmentDate"},
		},
		{
			name: "nested path composition",
			schema: map[string]interface{}{
				"properties": map[string]interface{}{
					"profile": map[string]interface{}{
						"properties": map[string]interface{}{
							"joinedAt": map[string]interface{}{"bsonType": "date"},
						},
					},
				},
			},
			want: []string{"profile.joinedAt"},
		},
		{
			name: "multiple date fields at mixed depth",
			schema: map[string]interface{}{
				"properties": map[string]interface{}{
					"dateJoined": map[string]interface{}{"bsonType": "date"},
					"email":      map[string]interface{}{"bsonType": "string"},
					"profile": map[string]interface{}{
						"bsonType": "object",
						"properties": map[string]interface{}{
							"bio":       map[string]interface{}{"bsonType": "string"},
							"updatedAt": map[string]interface{}{"bsonType": "date"},
						},
					},
				},
			},
			want: []string{"dateJoined", "profile.updatedAt"},
		},
		{
			// a malformed node marked "date" that also carries children:
			// both the path and the children are collected
			name: "date node with nested properties",
			schema: map[string]interface{}{
				"properties": map[string]interface{}{
					"weird": map[string]interface{}{
						"bsonType": "date",
						"properties": map[string]interface{}{
							"inner": map[string]interface{}{"bsonType": "date"},
						},
					},
				},
			},
			want: []string{"weird", "weird.inner"},
		},
		{
			name: "non-map property nodes are skipped",
			schema: map[string]interface{}{
				"properties": map[string]interface{}{
					"oops":       "not a descriptor",
					"dateJoined": map[string]interface{}{"bsonType": "date"},
				},
			},
			want: []string{"dateJoined"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateFields(tt.schema)
			want := make(FieldSet)
			for _, path := range tt.want {
				want.Add(path)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("DateFields() = %v, want %v", got, want)
			}
		})
	}
}

func TestConvertDates(t *testing.T) {
	fields := make(FieldSet)
	fields.Add("enrollmentDate")

	t.Run("string at date path is parsed", func(t *testing.T) {
		doc := map[string]interface{}{"enrollmentDate": "2023-05-01T00:00:00"}
		got := ConvertDates(doc, fields, "")

		want := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
		ts, ok := got["enrollmentDate"].(time.Time)
		if !ok {
			t.Fatalf("ConvertDates() enrollmentDate = %T, want time.Time", got["enrollmentDate"])
		}
		if !ts.Equal(want) {
			t.Errorf("ConvertDates() enrollmentDate = %v, want %v", ts, want)
		}
	})

	t.Run("unparseable string is preserved", func(t *testing.T) {
		doc := map[string]interface{}{"enrollmentDate": "not-a-date"}
		got := ConvertDates(doc, fields, "")
		if got["enrollmentDate"] != "not-a-date" {
			t.Errorf("ConvertDates() enrollmentDate = %v, want original string", got["enrollmentDate"])
		}
	})

	t.Run("document without date strings is untouched", func(t *testing.T) {
		doc := map[string]interface{}{
			"progress":  0.75,
			"completed": true,
			"meta":      map[string]interface{}{"note": "n/a"},
			"tags":      []interface{}{"Python", "SQL"},
		}
		want := map[string]interface{}{
			"progress":  0.75,
			"completed": true,
			"meta":      map[string]interface{}{"note": "n/a"},
			"tags":      []interface{}{"Python", "SQL"},
		}
		if got := ConvertDates(doc, fields, ""); !reflect.DeepEqual(got, want) {
			t.Errorf("ConvertDates() = %v, want %v", got, want)
		}
	})

	t.Run("nested documents compose the prefix", func(t *testing.T) {
		nested := make(FieldSet)
		nested.Add("profile.joinedAt")

		doc := map[string]interface{}{
			"profile": map[string]interface{}{"joinedAt": "2021-11-23T10:30:00Z"},
		}
		got := ConvertDates(doc, nested, "")

		prof := got["profile"].(map[string]interface{})
		ts, ok := prof["joinedAt"].(time.Time)
		if !ok {
			t.Fatalf("ConvertDates() profile.joinedAt = %T, want time.Time", prof["joinedAt"])
		}
		want := time.Date(2021, 11, 23, 10, 30, 0, 0, time.UTC)
		if !ts.Equal(want) {
			t.Errorf("ConvertDates() profile.joinedAt = %v, want %v", ts, want)
		}
	})

	t.Run("documents inside arrays are walked", func(t *testing.T) {
		listFields := make(FieldSet)
		listFields.Add("lessons.createdAt")

		doc := map[string]interface{}{
			"lessons": []interface{}{
				map[string]interface{}{"createdAt": "2022-01-01T00:00:00"},
				map[string]interface{}{"createdAt": "bad"},
				"intro.pdf", // non-document elements pass through
			},
		}
		got := ConvertDates(doc, listFields, "")

		lessons := got["lessons"].([]interface{})
		first := lessons[0].(map[string]interface{})
		if _, ok := first["createdAt"].(time.Time); !ok {
			t.Errorf("ConvertDates() lessons[0].createdAt = %T, want time.Time", first["createdAt"])
		}
		second := lessons[1].(map[string]interface{})
		if second["createdAt"] != "bad" {
			t.Errorf("ConvertDates() lessons[1].createdAt = %v, want original string", second["createdAt"])
		}
		if lessons[2] != "intro.pdf" {
			t.Errorf("ConvertDates() lessons[2] = %v, want untouched scalar", lessons[2])
		}
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		doc := map[string]interface{}{"enrollmentDate": "2023-05-01T00:00:00"}
		once := ConvertDates(doc, fields, "")
		first := once["enrollmentDate"]

		twice := ConvertDates(once, fields, "")
		if twice["enrollmentDate"] != first {
			t.Errorf("ConvertDates() second pass changed value: %v -> %v", first, twice["enrollmentDate"])
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", in: "2023-05-01T12:00:00Z", want: time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)},
		{name: "rfc3339 with offset", in: "2023-05-01T12:00:00+02:00", want: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)},
		{name: "zone-less", in: "2023-05-01T12:00:00", want: time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)},
		{name: "zone-less with fraction", in: "2023-05-01T12:00:00.250", want: time.Date(2023, 5, 1, 12, 0, 0, 250000000, time.UTC)},
		{name: "bare date", in: "2023-05-01", want: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadValidators(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadValidators("no/such/file.json"); err == nil {
			t.Error("LoadValidators() expected an error for a missing file")
		}
	})
}
