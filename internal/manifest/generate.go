package manifest

import (
	"path"
	"path/filepath"
	"strings"
)

// EventResolver maps a sound file path to a sound event name.
type EventResolver interface {
	Resolve(path string) (string, error)
}

// DefaultsResolver supplies the starting values for new events and sounds.
type DefaultsResolver interface {
	EventDefaults(eventName string) SoundEvent
	SoundDefaults(eventName, soundName string) Sound
}

// Generate builds a manifest from sound file paths relative to a pack's
// sounds folder. Files whose path cannot be resolved to a known event are
// skipped and reported as warnings, in input order.
func Generate(namespace string, files []string, defaults DefaultsResolver, events EventResolver) (Manifest, []string) {
	result := make(Manifest)
	var warnings []string

	for _, file := range files {
		file = filepath.ToSlash(file)

		eventName, err := events.Resolve(file)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}

		event, ok := result[eventName]
		if !ok {
			seed := defaults.EventDefaults(eventName)
			event = &seed
			if event.Sounds == nil {
				event.Sounds = []Sound{}
			}
			result[eventName] = event
		}

		event.AddSounds(defaults.SoundDefaults(eventName, SoundName(namespace, file)))
	}

	for _, event := range result {
		event.SortSounds()
	}
	return result, warnings
}

// SoundName builds the namespaced resource name Minecraft uses to locate a
// sound file: "<namespace>:<dir>/<stem>".
func SoundName(namespace, file string) string {
	file = strings.TrimPrefix(filepath.ToSlash(file), "/")
	dir, base := path.Split(file)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return namespace + ":" + dir + stem
}
