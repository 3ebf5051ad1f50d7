package manifest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Decode reads a manifest from r. Empty input yields an empty manifest.
func Decode(r io.Reader) (Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, nil
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m == nil {
		m = Manifest{}
	}
	for name, event := range m {
		if event == nil {
			m[name] = &SoundEvent{Sounds: []Sound{}}
		} else if event.Sounds == nil {
			event.Sounds = []Sound{}
		}
	}
	return m, nil
}

// Load reads the manifest stored at path. A missing or empty file yields an
// empty manifest.
func Load(path string) (Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, nil
		}
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	m, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes m using four-space indentation with event names in
// ascending order and each sound object on a single line.
func Encode(w io.Writer, m Manifest) error {
	bw := bufio.NewWriter(w)
	if err := encodeManifest(bw, m); err != nil {
		return err
	}
	return bw.Flush()
}

// Marshal returns the encoded form of m.
func Marshal(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes m to path atomically via a temporary file in the same folder.
func Save(path string, m Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func encodeManifest(w *bufio.Writer, m Manifest) error {
	names := m.Names()
	if len(names) == 0 {
		_, err := w.WriteString("{}\n")
		return err
	}

	w.WriteString("{\n")
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encode event name %q: %w", name, err)
		}
		w.WriteString(indentUnit)
		w.Write(key)
		w.WriteString(": ")
		if err := encodeEvent(w, m[name]); err != nil {
			return fmt.Errorf("encode event %q: %w", name, err)
		}
		if i < len(names)-1 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
	}
	_, err := w.WriteString("}\n")
	return err
}

func encodeEvent(w *bufio.Writer, event *SoundEvent) error {
	if event == nil {
		event = &SoundEvent{}
	}

	var fields []field
	if event.Replace != nil {
		fields = append(fields, field{"replace", *event.Replace})
	}
	fields = append(fields, field{"sounds", nil})
	if event.Subtitle != nil {
		fields = append(fields, field{"subtitle", *event.Subtitle})
	}
	fields = appendExtra(fields, event.Extra)

	inner := indentUnit + indentUnit
	w.WriteString("{\n")
	for i, f := range fields {
		w.WriteString(inner)
		writeKey(w, f.key)
		if f.key == "sounds" && f.value == nil {
			if err := encodeSounds(w, event.Sounds, inner); err != nil {
				return err
			}
		} else {
			value, err := json.Marshal(f.value)
			if err != nil {
				return err
			}
			w.Write(value)
		}
		if i < len(fields)-1 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
	}
	w.WriteString(indentUnit)
	_, err := w.WriteString("}")
	return err
}

func encodeSounds(w *bufio.Writer, sounds []Sound, indent string) error {
	if len(sounds) == 0 {
		_, err := w.WriteString("[]")
		return err
	}
	w.WriteString("[\n")
	for i, s := range sounds {
		line, err := compactSound(s)
		if err != nil {
			return fmt.Errorf("encode sound %q: %w", s.Name, err)
		}
		w.WriteString(indent + indentUnit)
		w.Write(line)
		if i < len(sounds)-1 {
			w.WriteByte(',')
		}
		w.WriteByte('\n')
	}
	w.WriteString(indent)
	_, err := w.WriteString("]")
	return err
}

type field struct {
	key   string
	value any
}

// compactSound renders a sound as a single-line object with a space after
// every separator, in the same key order as the struct tags. A sound read
// from the string shorthand is written back as a string while it carries
// nothing but its name.
func compactSound(s Sound) ([]byte, error) {
	if s.Shorthand && s.Attributes.Equal(Attributes{}) && len(s.Extra) == 0 {
		return json.Marshal(s.Name)
	}

	fields := []field{{"name", s.Name}}
	if s.Volume != nil {
		fields = append(fields, field{"volume", floatLiteral(*s.Volume)})
	}
	if s.Pitch != nil {
		fields = append(fields, field{"pitch", floatLiteral(*s.Pitch)})
	}
	if s.Weight != nil {
		fields = append(fields, field{"weight", *s.Weight})
	}
	if s.Stream != nil {
		fields = append(fields, field{"stream", *s.Stream})
	}
	if s.AttenuationDistance != nil {
		fields = append(fields, field{"attenuation_distance", *s.AttenuationDistance})
	}
	if s.Preload != nil {
		fields = append(fields, field{"preload", *s.Preload})
	}
	if s.Type != nil {
		fields = append(fields, field{"type", *s.Type})
	}
	fields = appendExtra(fields, s.Extra)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// appendExtra adds the unmodelled keys after the known ones, sorted by key.
func appendExtra(fields []field, extra Extra) []field {
	for _, key := range extra.Keys() {
		fields = append(fields, field{key, extra[key]})
	}
	return fields
}

func writeKey(w *bufio.Writer, key string) {
	quoted, _ := json.Marshal(key)
	w.Write(quoted)
	w.WriteString(": ")
}

// floatLiteral always carries a fractional part so volume and pitch read as
// floats, 1.0 rather than 1.
type floatLiteral float64

func (f floatLiteral) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported float value %v", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}
