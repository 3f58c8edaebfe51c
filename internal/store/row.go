package store

import "strconv"

// String returns the field as a string, or "" when absent or non-string.
func (r Row) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Int returns the field coerced to int. Firestore decodes numbers as int64
// or float64 depending on how they were written.
func (r Row) Int(field string) int {
	switch v := r[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// Bool returns the field as a bool. Numeric 1 counts as true to absorb
// checkbox-style columns stored as 0/1.
func (r Row) Bool(field string) bool {
	switch v := r[field].(type) {
	case bool:
		return v
	case int64:
		return v == 1
	case float64:
		return v == 1
	}
	return false
}

// Strings returns the field as a string slice, tolerating []any rows.
func (r Row) Strings(field string) []string {
	switch v := r[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// RefID resolves a reference field that may be stored either as a plain ID
// string or as a map carrying an "id" key.
func (r Row) RefID(field string) string {
	switch v := r[field].(type) {
	case string:
		return v
	case map[string]any:
		id, _ := v["id"].(string)
		return id
	}
	return ""
}
