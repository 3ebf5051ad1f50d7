package manifest

import (
	"slices"
	"sort"
)

// Sound types accepted by Minecraft for the "type" attribute.
const (
	TypeSound = "sound"
	TypeEvent = "event"
)

// Attributes holds the optional per-sound settings. A nil field is unset.
type Attributes struct {
	Volume              *float64 `json:"volume,omitempty"`
	Pitch               *float64 `json:"pitch,omitempty"`
	Weight              *int64   `json:"weight,omitempty"`
	Stream              *bool    `json:"stream,omitempty"`
	AttenuationDistance *int64   `json:"attenuation_distance,omitempty"`
	Preload             *bool    `json:"preload,omitempty"`
	Type                *string  `json:"type,omitempty"`
}

// Sound is a single playable entry of a sound event.
type Sound struct {
	Name string `json:"name"`
	Attributes
	Extra     Extra `json:"-"`
	// Shorthand records that the sound was read as a bare name string.
	Shorthand bool  `json:"-"`
}

// SoundEvent is the record stored under an event name in sounds.json.
type SoundEvent struct {
	Replace  *bool   `json:"replace,omitempty"`
	Sounds   []Sound `json:"sounds"`
	Subtitle *string `json:"subtitle,omitempty"`
	Extra    Extra   `json:"-"`
}

// Manifest maps event names to their sound events.
type Manifest map[string]*SoundEvent

// Equal reports whether two attribute sets hold the same values.
func (a Attributes) Equal(other Attributes) bool {
	return ptrEqual(a.Volume, other.Volume) &&
		ptrEqual(a.Pitch, other.Pitch) &&
		ptrEqual(a.Weight, other.Weight) &&
		ptrEqual(a.Stream, other.Stream) &&
		ptrEqual(a.AttenuationDistance, other.AttenuationDistance) &&
		ptrEqual(a.Preload, other.Preload) &&
		ptrEqual(a.Type, other.Type)
}

// Equal reports full value equality, not pointer identity. A shorthand
// name equals the object holding only that name.
func (s Sound) Equal(other Sound) bool {
	return s.Name == other.Name && s.Attributes.Equal(other.Attributes) && s.Extra.Equal(other.Extra)
}

// Clone returns a deep copy of the attributes.
func (a Attributes) Clone() Attributes {
	return Attributes{
		Volume:              clonePtr(a.Volume),
		Pitch:               clonePtr(a.Pitch),
		Weight:              clonePtr(a.Weight),
		Stream:              clonePtr(a.Stream),
		AttenuationDistance: clonePtr(a.AttenuationDistance),
		Preload:             clonePtr(a.Preload),
		Type:                clonePtr(a.Type),
	}
}

// Clone returns a deep copy of the sound.
func (s Sound) Clone() Sound {
	return Sound{
		Name:       s.Name,
		Attributes: s.Attributes.Clone(),
		Extra:      s.Extra.Clone(),
		Shorthand:  s.Shorthand,
	}
}

// Clone returns a deep copy of the event. A nil event clones to nil.
func (e *SoundEvent) Clone() *SoundEvent {
	if e == nil {
		return nil
	}
	sounds := make([]Sound, 0, len(e.Sounds))
	for _, s := range e.Sounds {
		sounds = append(sounds, s.Clone())
	}
	return &SoundEvent{
		Replace:  clonePtr(e.Replace),
		Sounds:   sounds,
		Subtitle: clonePtr(e.Subtitle),
		Extra:    e.Extra.Clone(),
	}
}

// Equal reports whether two events carry the same directives and sounds in
// the same order.
func (e *SoundEvent) Equal(other *SoundEvent) bool {
	if e == nil || other == nil {
		return e == other
	}
	if !ptrEqual(e.Replace, other.Replace) || !ptrEqual(e.Subtitle, other.Subtitle) || !e.Extra.Equal(other.Extra) {
		return false
	}
	return slices.EqualFunc(e.Sounds, other.Sounds, Sound.Equal)
}

// AddSounds appends each sound that is not already present by value.
func (e *SoundEvent) AddSounds(sounds ...Sound) {
	for _, s := range sounds {
		if e.HasSound(s) {
			continue
		}
		e.Sounds = append(e.Sounds, s.Clone())
	}
}

// HasSound reports whether an equal sound is already part of the event.
func (e *SoundEvent) HasSound(s Sound) bool {
	return slices.ContainsFunc(e.Sounds, s.Equal)
}

// SortSounds orders sounds by name. Sounds sharing a name keep their
// relative order.
func (e *SoundEvent) SortSounds() {
	sort.SliceStable(e.Sounds, func(i, j int) bool {
		return e.Sounds[i].Name < e.Sounds[j].Name
	})
}

// Names returns the event names in ascending order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SoundCount returns the total number of sounds across all events.
func (m Manifest) SoundCount() int {
	total := 0
	for _, event := range m {
		if event != nil {
			total += len(event.Sounds)
		}
	}
	return total
}

// Clone returns a deep copy of the manifest.
func (m Manifest) Clone() Manifest {
	out := make(Manifest, len(m))
	for name, event := range m {
		out[name] = event.Clone()
	}
	return out
}

// Canonicalize dedupes and sorts the sounds of every event in place and
// replaces nil sound lists with empty ones.
func (m Manifest) Canonicalize() {
	for name, event := range m {
		if event == nil {
			m[name] = &SoundEvent{Sounds: []Sound{}}
			continue
		}
		unique := make([]Sound, 0, len(event.Sounds))
		for _, s := range event.Sounds {
			if slices.ContainsFunc(unique, s.Equal) {
				continue
			}
			unique = append(unique, s)
		}
		event.Sounds = unique
		event.SortSounds()
	}
}

// Equal reports whether two manifests hold equal events under the same names.
func (m Manifest) Equal(other Manifest) bool {
	if len(m) != len(other) {
		return false
	}
	for name, event := range m {
		otherEvent, ok := other[name]
		if !ok || !event.Equal(otherEvent) {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to v. Handy for building optional attributes.
func Ptr[T any](v T) *T {
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
