package data

import (
	"strconv"
	"strings"
	"time"
)

// Row is one flattened record keyed by upstream field name.
// Values keep the loose typing of the JSON payload, the accessors below
// apply the best effort coercion policy: a failed parse yields nil, never
// a default value, since 0 is a legitimate statistic.
type Row map[string]any

// StringValue returns the trimmed string under the key, nil when absent.
func (r Row) StringValue(key string) *string {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	value, ok := raw.(string)
	if !ok {
		return nil
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// IdValue coerces a external identifier to its canonical string form.
// Identifiers are join keys and must compare consistently whether the
// source sent them as a number or a string.
func (r Row) IdValue(key string) *string {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	switch value := raw.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		return &trimmed
	case float64:
		formatted := strconv.FormatInt(int64(value), 10)
		return &formatted
	case int:
		formatted := strconv.Itoa(value)
		return &formatted
	default:
		return nil
	}
}

// IntValue parses a integer field.
func (r Row) IntValue(key string) *int {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	switch value := raw.(type) {
	case float64:
		parsed := int(value)
		return &parsed
	case int:
		return &value
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// FloatValue parses a float field.
func (r Row) FloatValue(key string) *float64 {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	switch value := raw.(type) {
	case float64:
		return &value
	case int:
		parsed := float64(value)
		return &parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// BoolValue parses a boolean field, accepting the numeric flags the API uses.
func (r Row) BoolValue(key string) *bool {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil
	}

	switch value := raw.(type) {
	case bool:
		return &value
	case float64:
		parsed := value != 0
		return &parsed
	case string:
		parsed := value == "1" || strings.EqualFold(value, "true") || strings.EqualFold(value, "y")
		return &parsed
	default:
		return nil
	}
}

// DateValue parses a ISO date field (YYYY-MM-DD, timestamps accepted).
func (r Row) DateValue(key string) *time.Time {
	value := r.StringValue(key)
	if value == nil {
		return nil
	}

	raw := *value
	if len(raw) > 10 {
		raw = raw[:10]
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// SplitName splits a full name on the first whitespace.
// The first token is the first name, the remainder the last name.
func SplitName(full string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// ParseMinutes converts a "MM:SS" box score value to seconds.
func ParseMinutes(minutes string) *int {
	parts := strings.SplitN(minutes, ":", 2)
	if len(parts) != 2 {
		return nil
	}

	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	total := mins*60 + secs
	return &total
}
