package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

var (
	soundKeys = []string{"name", "volume", "pitch", "weight", "stream", "attenuation_distance", "preload", "type"}
	eventKeys = []string{"replace", "sounds", "subtitle"}
)

// Extra holds object keys the manifest types do not model. Values are kept
// as compact JSON and written back unchanged.
type Extra map[string]json.RawMessage

// UnmarshalJSON accepts either a sound object or the bare string shorthand
// Minecraft allows in place of {"name": ...}.
func (s *Sound) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Sound{Name: name, Shorthand: true}
		return nil
	}

	type plain Sound
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, soundKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*s = Sound(p)
	return nil
}

// UnmarshalJSON decodes the modelled event fields and keeps every other key
// in Extra.
func (e *SoundEvent) UnmarshalJSON(data []byte) error {
	type plain SoundEvent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, eventKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*e = SoundEvent(p)
	return nil
}

// splitExtra returns the keys of the JSON object in data that match none of
// known. Matching ignores case like encoding/json does, so a key is never
// both decoded into a field and kept as extra.
func splitExtra(data []byte, known []string) (Extra, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var extra Extra
	for key, value := range raw {
		if isKnownKey(key, known) {
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		if extra == nil {
			extra = make(Extra)
		}
		extra[key] = json.RawMessage(compact.Bytes())
	}
	return extra, nil
}

func isKnownKey(key string, known []string) bool {
	for _, k := range known {
		if strings.EqualFold(key, k) {
			return true
		}
	}
	return false
}

// Keys returns the extra keys in ascending order.
func (x Extra) Keys() []string {
	keys := make([]string, 0, len(x))
	for key := range x {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares values byte for byte. Decoded values are already compact.
func (x Extra) Equal(other Extra) bool {
	if len(x) != len(other) {
		return false
	}
	for key, value := range x {
		otherValue, ok := other[key]
		if !ok || !bytes.Equal(value, otherValue) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. An empty set clones to nil.
func (x Extra) Clone() Extra {
	if len(x) == 0 {
		return nil
	}
	out := make(Extra, len(x))
	for key, value := range x {
		out[key] = append(json.RawMessage(nil), value...)
	}
	return out
}

// fill returns a copy of x with the keys of other that x lacks.
func (x Extra) fill(other Extra) Extra {
	out := x.Clone()
	for key, value := range other {
		if _, ok := out[key]; ok {
			continue
		}
		if out == nil {
			out = make(Extra, len(other))
		}
		out[key] = append(json.RawMessage(nil), value...)
	}
	return out
}
