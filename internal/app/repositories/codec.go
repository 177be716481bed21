package repositories

import (
	"strconv"
	"time"
)

// Value coercion helpers. The store is schemaless: Firestore hands back
// int64/float64/string/time.Time, the in-memory store whatever was
// written. Every codec reads through these so a mistyped field degrades
// to a zero value instead of a panic.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloatPtr(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

func asIntPtr(v interface{}) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

// asTime reads a timestamp stored either as an RFC3339 string (how this
// system writes them) or a native store timestamp.
func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func timeField(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// isDigits reports whether s is non-empty and all decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// keyID resolves an entity's identity. The document key is the single
// source of truth; the body's own id field is consulted only for legacy
// documents whose key is not a decimal integer.
func keyID(key string, data map[string]interface{}, idField string) int64 {
	if isDigits(key) {
		if id, err := strconv.ParseInt(key, 10, 64); err == nil {
			return id
		}
	}
	return asInt64(data[idField])
}
