package defaults_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spindex/internal/defaults"
	"spindex/internal/manifest"
)

func mustParse(t *testing.T, doc string) *defaults.Table {
	t.Helper()
	table, err := defaults.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return table
}

func TestEventDefaultsSubtitle(t *testing.T) {
	table := mustParse(t, `{
		"all": {"subtitle": "subtitles.from.all", "replace": true},
		"entity.witch.drink": {"subtitle": "subtitles.custom.drink"}
	}`)

	event := table.EventDefaults("entity.witch.drink")
	if event.Subtitle == nil || *event.Subtitle != "subtitles.custom.drink" {
		t.Fatalf("expected event tier subtitle, got %v", event.Subtitle)
	}

	other := table.EventDefaults("entity.villager.ambient")
	if other.Subtitle == nil || *other.Subtitle != "subtitles.entity.villager.ambient" {
		t.Fatalf("all tier subtitle must be ignored, got %v", other.Subtitle)
	}
	if other.Replace == nil || !*other.Replace {
		t.Fatalf("replace should be inherited from all tier, got %v", other.Replace)
	}
	if other.Sounds == nil || len(other.Sounds) != 0 {
		t.Fatalf("expected empty non-nil sounds, got %#v", other.Sounds)
	}
}

func TestEventDefaultsReplaceNeverSynthesized(t *testing.T) {
	event := defaults.Empty().EventDefaults("weather.rain")
	if event.Replace != nil {
		t.Fatalf("replace must stay unset, got %v", *event.Replace)
	}
	if event.Subtitle == nil || *event.Subtitle != "subtitles.weather.rain" {
		t.Fatalf("unexpected subtitle %v", event.Subtitle)
	}
}

func TestEventDefaultsReplacePrecedence(t *testing.T) {
	table := mustParse(t, `{"all": {"replace": true}, "weather.rain": {"replace": false}}`)
	event := table.EventDefaults("weather.rain")
	if event.Replace == nil || *event.Replace {
		t.Fatalf("event tier replace should win, got %v", event.Replace)
	}
}

func TestSoundDefaultsTwoTier(t *testing.T) {
	table := mustParse(t, `{
		"all": {"volume": 0.4, "pitch": 1.2, "stream": true, "weight": 3},
		"entity.witch.drink": {"volume": 0.9, "preload": true, "type": "sound"}
	}`)

	sound := table.SoundDefaults("entity.witch.drink", "pack:entity/witch/drink/a")
	want := manifest.Sound{
		Name: "pack:entity/witch/drink/a",
		Attributes: manifest.Attributes{
			Volume:  manifest.Ptr(0.9),
			Pitch:   manifest.Ptr(1.2),
			Weight:  manifest.Ptr(int64(3)),
			Stream:  manifest.Ptr(true),
			Preload: manifest.Ptr(true),
			Type:    manifest.Ptr(manifest.TypeSound),
		},
	}
	if !sound.Equal(want) {
		t.Fatalf("got %+v want %+v", sound, want)
	}
	if sound.AttenuationDistance != nil {
		t.Fatalf("attenuation_distance should stay unset")
	}

	plain := table.SoundDefaults("weather.rain", "pack:weather/rain/r")
	if plain.Volume == nil || *plain.Volume != 0.4 || plain.Preload != nil {
		t.Fatalf("expected all tier values only, got %+v", plain.Attributes)
	}
}

func TestSoundDefaultsEmptyTable(t *testing.T) {
	sound := defaults.Empty().SoundDefaults("weather.rain", "pack:weather/rain/r")
	if !sound.Equal(manifest.Sound{Name: "pack:weather/rain/r"}) {
		t.Fatalf("expected bare sound, got %+v", sound)
	}
}

func TestValidationBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "weight accepted at max", doc: `{"all": {"weight": 2147483647}}`},
		{name: "weight accepted at one", doc: `{"all": {"weight": 1}}`},
		{name: "weight over max", doc: `{"all": {"weight": 2147483648}}`, field: "weight"},
		{name: "weight zero", doc: `{"all": {"weight": 0}}`, field: "weight"},
		{name: "weight float literal", doc: `{"all": {"weight": 1.0}}`, field: "weight"},
		{name: "weight string", doc: `{"all": {"weight": "2"}}`, field: "weight"},
		{name: "attenuation zero", doc: `{"all": {"attenuation_distance": 0}}`},
		{name: "attenuation max", doc: `{"all": {"attenuation_distance": 2147483647}}`},
		{name: "attenuation negative", doc: `{"all": {"attenuation_distance": -1}}`, field: "attenuation_distance"},
		{name: "attenuation over max", doc: `{"all": {"attenuation_distance": 2147483648}}`, field: "attenuation_distance"},
		{name: "volume bounds", doc: `{"all": {"volume": 0}, "weather.rain": {"volume": 1}}`},
		{name: "volume negative", doc: `{"all": {"volume": -0.1}}`, field: "volume"},
		{name: "volume over one", doc: `{"all": {"volume": 1.01}}`, field: "volume"},
		{name: "volume string", doc: `{"all": {"volume": "loud"}}`, field: "volume"},
		{name: "pitch string", doc: `{"all": {"pitch": "high"}}`, field: "pitch"},
		{name: "stream not bool", doc: `{"all": {"stream": 1}}`, field: "stream"},
		{name: "preload not bool", doc: `{"all": {"preload": "yes"}}`, field: "preload"},
		{name: "type event", doc: `{"all": {"type": "event"}}`},
		{name: "type unknown", doc: `{"all": {"type": "music"}}`, field: "type"},
		{name: "replace not bool", doc: `{"all": {"replace": "true"}}`, field: "replace"},
		{name: "subtitle not string", doc: `{"all": {"subtitle": 3}}`, field: "subtitle"},
		{name: "yaml weight accepted at max", doc: "all:\n  weight: 2147483647\n"},
		{name: "yaml weight over max", doc: "all:\n  weight: 2147483648\n", field: "weight"},
		{name: "yaml weight float literal", doc: "all:\n  weight: 1.0\n", field: "weight"},
		{name: "yaml attenuation float literal", doc: "all:\n  attenuation_distance: 16.0\n", field: "attenuation_distance"},
		{name: "yaml volume integer", doc: "all:\n  volume: 1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := defaults.Parse([]byte(tc.doc))
			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if table == nil {
					t.Fatal("expected table")
				}
				return
			}
			var verr *defaults.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("unexpected field: got %q want %q", verr.Field, tc.field)
			}
			if table != nil {
				t.Fatal("no table should be returned on validation failure")
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	_, err := defaults.Parse([]byte(`{"all": {"weight": 2147483648}}`))
	if err == nil || !strings.Contains(err.Error(), "weight cannot be greater than 2,147,483,647") {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = defaults.Parse([]byte(`{"all": {"volume": -1}}`))
	if err == nil || !strings.Contains(err.Error(), "volume cannot be less than zero") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidationFirstKeyWins(t *testing.T) {
	_, err := defaults.Parse([]byte(`{"z.event": {"volume": 2}, "a.event": {"weight": 0}}`))
	var verr *defaults.ValidationError
	if !errors.As(err, &verr) || verr.Key != "a.event" {
		t.Fatalf("expected first key in order to fail, got %v", err)
	}
}

func TestNewRejectsNonObjectEntry(t *testing.T) {
	_, err := defaults.New(map[string]any{"all": "loud"})
	var verr *defaults.ValidationError
	if !errors.As(err, &verr) || verr.Key != "all" {
		t.Fatalf("expected ValidationError for all, got %v", err)
	}
}

func TestNewAcceptsGoNumbers(t *testing.T) {
	table, err := defaults.New(map[string]any{
		"all": map[string]any{"volume": 0.5, "weight": 2, "attenuation_distance": int64(16), "pitch": json.Number("0.8")},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	entry, ok := table.Lookup("all")
	if !ok || *entry.Weight != 2 || *entry.AttenuationDistance != 16 || *entry.Pitch != 0.8 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestParseYAML(t *testing.T) {
	table := mustParse(t, "all:\n  volume: 0.25\nentity.witch.drink:\n  weight: 4\n  subtitle: subtitles.witch\n")
	sound := table.SoundDefaults("entity.witch.drink", "x")
	if *sound.Volume != 0.25 || *sound.Weight != 4 {
		t.Fatalf("unexpected yaml defaults: %+v", sound.Attributes)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "   \n", "{}", "# only a comment\n"} {
		table := mustParse(t, doc)
		if table.Len() != 0 {
			t.Fatalf("Parse(%q): expected empty table, got %d entries", doc, table.Len())
		}
	}
}

func TestLoad(t *testing.T) {
	table, err := defaults.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || table.Len() != 0 {
		t.Fatalf("missing file should give an empty table, got %v, %v", table, err)
	}

	path := filepath.Join(t.TempDir(), "defaults.json")
	if err := os.WriteFile(path, []byte(`{"all": {"weight": -3}}`), 0o644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}
	_, err = defaults.Load(path)
	var verr *defaults.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected wrapped ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}
