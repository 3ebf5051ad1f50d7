package defaults

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

// Parse decodes a defaults document and validates it. JSON documents are
// decoded with json.Number so number literals keep their exact form;
// anything else is decoded as YAML, which keeps 1 and 1.0 apart as int and
// float64. Empty input yields an empty table.
func Parse(data []byte) (*Table, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Empty(), nil
	}
	if trimmed[0] != '{' {
		return parseYAML(trimmed)
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	return New(raw)
}

func parseYAML(data []byte) (*Table, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse defaults yaml: %w", err)
	}
	if doc == nil {
		return Empty(), nil
	}
	raw := make(map[string]any, len(doc))
	for key, value := range doc {
		converted, err := fromYAML(value)
		if err != nil {
			return nil, fmt.Errorf("parse defaults yaml: %q: %w", key, err)
		}
		raw[key] = converted
	}
	return New(raw)
}

// fromYAML turns the map[interface{}]interface{} values yaml.v2 produces
// into the map[string]any shape New expects. Scalars pass through.
func fromYAML(value any) (any, error) {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", key)
			}
			converted, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			out[name] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return value, nil
	}
}

// Load reads and validates the defaults file at path. A missing file yields
// an empty table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
