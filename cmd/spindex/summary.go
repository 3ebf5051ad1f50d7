package main

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spindex/internal/manifest"
)

type categorySummary struct {
	Category string
	Events   int
	Sounds   int
}

// summarizeCategories groups manifest events by their first name segment.
func summarizeCategories(m manifest.Manifest) []categorySummary {
	byCategory := make(map[string]*categorySummary)
	for name, event := range m {
		category, _, _ := strings.Cut(name, ".")
		entry, ok := byCategory[category]
		if !ok {
			entry = &categorySummary{Category: category}
			byCategory[category] = entry
		}
		entry.Events++
		if event != nil {
			entry.Sounds += len(event.Sounds)
		}
	}

	out := make([]categorySummary, 0, len(byCategory))
	for _, entry := range byCategory {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// categoryLabel turns "music_disc" into "Music Disc".
func categoryLabel(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "_", " "))
}

func renderSummary(m manifest.Manifest) string {
	summaries := summarizeCategories(m)
	rows := make([][]string, 0, len(summaries)+1)
	var events, sounds int
	for _, s := range summaries {
		rows = append(rows, []string{categoryLabel(s.Category), strconv.Itoa(s.Events), strconv.Itoa(s.Sounds)})
		events += s.Events
		sounds += s.Sounds
	}
	rows = append(rows, []string{"Total", strconv.Itoa(events), strconv.Itoa(sounds)})
	return renderTable(
		[]string{"Category", "Events", "Sounds"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
