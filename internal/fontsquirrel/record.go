package fontsquirrel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Record is one loosely typed font object from the font list endpoint. Absent
// keys and JSON null are treated the same; accessors return an error only when
// a value is present with the wrong JSON type.
type Record map[string]any

// invalidKey marks a list element that was not a JSON object. The NUL prefix
// keeps it apart from upstream field names.
const invalidKey = "\x00invalid"

// RecordsFromList converts decoded font list elements into records, keeping
// positions. Elements that are not objects become invalid records whose Err
// describes the element.
func RecordsFromList(items []any) []Record {
	if items == nil {
		return nil
	}
	records := make([]Record, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			records[i] = Record{invalidKey: fmt.Sprintf("font list element %d: expected object, got %s", i, jsonType(item))}
			continue
		}
		records[i] = Record(obj)
	}
	return records
}

// Err reports why a record could not be read as an object at all. It is nil
// for every record decoded from a JSON object.
func (r Record) Err() error {
	if msg, ok := r[invalidKey].(string); ok {
		return errors.New(msg)
	}
	return nil
}

// String returns the string value for key. JSON numbers are returned as their
// literal text.
func (r Record) String(key string) (string, error) {
	switch v := r[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", typeError(key, "string", v)
	}
}

// Object returns the nested object for key, or nil when absent.
func (r Record) Object(key string) (Record, error) {
	switch v := r[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return Record(v), nil
	case Record:
		return v, nil
	default:
		return nil, typeError(key, "object", v)
	}
}

// Records returns the list of objects stored under key, or nil when absent.
func (r Record) Records(key string) ([]Record, error) {
	switch v := r[key].(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]Record, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("field %q[%d]: expected object, got %s", key, i, jsonType(item))
			}
			out = append(out, Record(obj))
		}
		return out, nil
	case []Record:
		return v, nil
	default:
		return nil, typeError(key, "array", v)
	}
}

// Flag returns the truthiness of key: booleans as-is, non-zero numbers, and
// strings accepted by strconv.ParseBool. Any other non-empty string, array or
// object counts as true so an odd flag never invalidates a record.
func (r Record) Flag(key string) (bool, error) {
	switch v := r[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return false, fmt.Errorf("field %q: %w", key, err)
		}
		return f != 0, nil
	case float64:
		return v != 0, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return false, nil
		}
		if b, err := strconv.ParseBool(trimmed); err == nil {
			return b, nil
		}
		return true, nil
	case []any:
		return len(v) > 0, nil
	case map[string]any:
		return len(v) > 0, nil
	default:
		return false, typeError(key, "boolean", v)
	}
}

// Len returns the number of elements in the array under key, or 0 when the
// value is absent or not an array.
func (r Record) Len(key string) int {
	switch v := r[key].(type) {
	case []any:
		return len(v)
	case []Record:
		return len(v)
	default:
		return 0
	}
}

// FamilyName returns the trimmed family_name, ignoring type errors. It is
// meant for log lines about records that may be malformed.
func (r Record) FamilyName() string {
	name, _ := r.String("family_name")
	return strings.TrimSpace(name)
}

func typeError(key, want string, got any) error {
	return fmt.Errorf("field %q: expected %s, got %s", key, want, jsonType(got))
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case []any, []Record:
		return "array"
	case map[string]any, Record:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
