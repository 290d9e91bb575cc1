package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldError describes one offending field of a request body. Field is a dotted
// path; list elements are addressed by index ("tags.2").
type FieldError struct {
	Field   string
	Type    string
	Message string
}

// ValidationError lists every field of a body that failed schema validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Entity is satisfied by a pointer to any content record type.
type Entity[T any] interface {
	*T
	Record
}

// Decode validates a JSON body against the schema of T and returns the typed,
// normalized record. Unknown fields are ignored.
func Decode[T any, P Entity[T]](body []byte) (T, error) {
	var out T
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return out, &ValidationError{Fields: []FieldError{{
			Field: "body", Type: "json_invalid", Message: "Body must be a JSON object",
		}}}
	}

	var errs []FieldError
	for _, f := range P(&out).fields() {
		v, ok := raw[f.name]
		if !ok || isNull(v) {
			if f.required {
				errs = append(errs, FieldError{Field: f.name, Type: "missing", Message: "Field required"})
			}
			continue
		}
		errs = append(errs, checkField(f, v)...)
	}
	if len(errs) > 0 {
		return out, &ValidationError{Fields: errs}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		// types were checked above; anything left is a malformed body
		return out, &ValidationError{Fields: []FieldError{{Field: "body", Type: "json_invalid", Message: err.Error()}}}
	}
	P(&out).Normalize()
	return out, nil
}

func checkField(f field, v json.RawMessage) []FieldError {
	switch f.kind {
	case kindString:
		var s string
		if json.Unmarshal(v, &s) != nil {
			return []FieldError{{Field: f.name, Type: "string_type", Message: "Input should be a valid string"}}
		}
	case kindDate:
		var s string
		if json.Unmarshal(v, &s) != nil {
			return []FieldError{{Field: f.name, Type: "date_type", Message: "Input should be a valid date"}}
		}
		if _, err := ParseDate(s); err != nil {
			return []FieldError{{Field: f.name, Type: "date_parsing", Message: fmt.Sprintf("Input should be a valid date in YYYY-MM-DD format, got %q", s)}}
		}
	case kindStringList:
		var items []json.RawMessage
		if json.Unmarshal(v, &items) != nil {
			return []FieldError{{Field: f.name, Type: "list_type", Message: "Input should be a valid list"}}
		}
		var errs []FieldError
		for i, item := range items {
			var s string
			if json.Unmarshal(item, &s) != nil {
				errs = append(errs, FieldError{
					Field:   f.name + "." + strconv.Itoa(i),
					Type:    "string_type",
					Message: "Input should be a valid string",
				})
			}
		}
		return errs
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// DecodeCollection validates body against the schema of the entity stored in
// collection. It is used by tooling that handles records generically.
func DecodeCollection(collection string, body []byte) (any, error) {
	switch collection {
	case CollectionCategory:
		return Decode[Category](body)
	case CollectionProduct:
		return Decode[Product](body)
	case CollectionSector:
		return Decode[Sector](body)
	case CollectionNews:
		return Decode[News](body)
	case CollectionDocument:
		return Decode[Document](body)
	case CollectionJob:
		return Decode[Job](body)
	case CollectionApplication:
		return Decode[Application](body)
	case CollectionContactMessage:
		return Decode[ContactMessage](body)
	case CollectionCompanyProfile:
		return Decode[CompanyProfile](body)
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}
