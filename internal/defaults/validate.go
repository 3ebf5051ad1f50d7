package defaults

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"spindex/internal/manifest"
)

const maxInt32 = math.MaxInt32

// ValidationError reports the first invalid value found while building a
// table. The table is unusable when one is returned.
type ValidationError struct {
	Key        string
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid defaults for %q: %s", e.Key, e.Constraint)
	}
	return fmt.Sprintf("invalid defaults for %q: %s: %s", e.Key, e.Field, e.Constraint)
}

// New validates raw, typically a decoded JSON object, and wraps it in a
// Table. Keys are checked in ascending order and the first violation is
// returned. Unknown fields are ignored.
func New(raw map[string]any) (*Table, error) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make(map[string]Entry, len(raw))
	for _, key := range keys {
		fields, ok := raw[key].(map[string]any)
		if !ok && raw[key] != nil {
			return nil, &ValidationError{Key: key, Constraint: "entry must be an object"}
		}
		entry, err := parseEntry(key, fields)
		if err != nil {
			return nil, err
		}
		entries[key] = entry
	}
	return &Table{entries: entries}, nil
}

func parseEntry(key string, fields map[string]any) (Entry, error) {
	var entry Entry
	fail := func(field, constraint string) (Entry, error) {
		return Entry{}, &ValidationError{Key: key, Field: field, Constraint: constraint}
	}

	if v, ok := fields["volume"]; ok {
		f, ok := asFloat(v)
		if !ok {
			return fail("volume", "volume must be a float datatype between 0.0 and 1.0")
		}
		if f < 0.0 {
			return fail("volume", "volume cannot be less than zero")
		}
		if f > 1.0 {
			return fail("volume", "volume cannot be greater than 1.0")
		}
		entry.Volume = manifest.Ptr(f)
	}

	if v, ok := fields["pitch"]; ok {
		f, ok := asFloat(v)
		if !ok {
			return fail("pitch", "pitch must be a float datatype")
		}
		entry.Pitch = manifest.Ptr(f)
	}

	if v, ok := fields["weight"]; ok {
		n, ok := asInt(v)
		if !ok {
			return fail("weight", "weight must be an integer between 1 and 2,147,483,647")
		}
		if n < 1 {
			return fail("weight", "weight cannot be less than 1")
		}
		if n > maxInt32 {
			return fail("weight", "weight cannot be greater than 2,147,483,647")
		}
		entry.Weight = manifest.Ptr(n)
	}

	if v, ok := fields["stream"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fail("stream", "stream must be a boolean datatype")
		}
		entry.Stream = manifest.Ptr(b)
	}

	if v, ok := fields["attenuation_distance"]; ok {
		n, ok := asInt(v)
		if !ok {
			return fail("attenuation_distance", "attenuation_distance must be an integer between 0 and 2,147,483,647")
		}
		if n < 0 {
			return fail("attenuation_distance", "attenuation_distance cannot be less than zero")
		}
		if n > maxInt32 {
			return fail("attenuation_distance", "attenuation_distance cannot be greater than 2,147,483,647")
		}
		entry.AttenuationDistance = manifest.Ptr(n)
	}

	if v, ok := fields["preload"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fail("preload", "preload must be a boolean datatype")
		}
		entry.Preload = manifest.Ptr(b)
	}

	if v, ok := fields["type"]; ok {
		s, ok := v.(string)
		if !ok {
			return fail("type", "type must be a string containing either 'sound' or 'event'")
		}
		if s != manifest.TypeSound && s != manifest.TypeEvent {
			return fail("type", "type must be either 'sound' or 'event'")
		}
		entry.Type = manifest.Ptr(s)
	}

	if v, ok := fields["replace"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fail("replace", "replace must be a boolean datatype")
		}
		entry.Replace = manifest.Ptr(b)
	}

	if v, ok := fields["subtitle"]; ok {
		s, ok := v.(string)
		if !ok {
			return fail("subtitle", "subtitle must be a string")
		}
		entry.Subtitle = manifest.Ptr(s)
	}

	return entry, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asInt accepts integral values only; 1.0 and 1e3 are rejected the same as
// 1.5, and so are values outside the int64 range.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
