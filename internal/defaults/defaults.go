// Package defaults holds the two-tier table of default values applied to
// newly generated sound events and sounds.
//
// A table maps an exact event name, or the literal key "all", to an Entry.
// Lookups consult the event tier first and fall back to the "all" tier one
// field at a time. Subtitles are the exception: they are specific to an event
// and are never taken from the "all" tier.
//
// Tables are validated once when built and are read-only afterwards.
package defaults

import (
	"spindex/internal/manifest"
)

// AllKey is the table key whose entry applies to every event.
const AllKey = "all"

// Entry is the set of defaults configured under one table key.
type Entry struct {
	manifest.Attributes
	Replace  *bool
	Subtitle *string
}

// Table is a validated, read-only defaults table.
type Table struct {
	entries map[string]Entry
}

// Empty returns a table without any defaults.
func Empty() *Table {
	return &Table{entries: map[string]Entry{}}
}

// Len returns the number of configured keys, including "all".
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry stored under key.
func (t *Table) Lookup(key string) (Entry, bool) {
	entry, ok := t.entries[key]
	return entry, ok
}

// EventDefaults returns the starting record for a new sound event. Replace is
// inherited from the event tier, then the "all" tier, and is otherwise left
// unset. Subtitle comes from the event tier or is derived from the event
// name. Sounds is always empty.
func (t *Table) EventDefaults(eventName string) manifest.SoundEvent {
	tiers := t.tiers(eventName)

	event := manifest.SoundEvent{
		Replace: firstSet(tiers, func(e Entry) *bool { return e.Replace }),
		Sounds:  []manifest.Sound{},
	}

	if own, ok := t.entries[eventName]; ok && eventName != AllKey && own.Subtitle != nil {
		event.Subtitle = manifest.Ptr(*own.Subtitle)
	} else {
		event.Subtitle = manifest.Ptr("subtitles." + eventName)
	}
	return event
}

// SoundDefaults returns a sound named soundName carrying every attribute the
// table defines for eventName. Attributes defined in neither tier stay unset.
func (t *Table) SoundDefaults(eventName, soundName string) manifest.Sound {
	tiers := t.tiers(eventName)

	return manifest.Sound{
		Name: soundName,
		Attributes: manifest.Attributes{
			Volume:              firstSet(tiers, func(e Entry) *float64 { return e.Volume }),
			Pitch:               firstSet(tiers, func(e Entry) *float64 { return e.Pitch }),
			Weight:              firstSet(tiers, func(e Entry) *int64 { return e.Weight }),
			Stream:              firstSet(tiers, func(e Entry) *bool { return e.Stream }),
			AttenuationDistance: firstSet(tiers, func(e Entry) *int64 { return e.AttenuationDistance }),
			Preload:             firstSet(tiers, func(e Entry) *bool { return e.Preload }),
			Type:                firstSet(tiers, func(e Entry) *string { return e.Type }),
		},
	}
}

// tiers lists the entries to consult for eventName, most specific first.
func (t *Table) tiers(eventName string) []Entry {
	tiers := make([]Entry, 0, 2)
	if entry, ok := t.entries[eventName]; ok {
		tiers = append(tiers, entry)
	}
	if eventName != AllKey {
		if entry, ok := t.entries[AllKey]; ok {
			tiers = append(tiers, entry)
		}
	}
	return tiers
}

// firstSet returns a copy of the first non-nil value get yields across tiers.
func firstSet[T any](tiers []Entry, get func(Entry) *T) *T {
	for _, tier := range tiers {
		if v := get(tier); v != nil {
			return manifest.Ptr(*v)
		}
	}
	return nil
}
