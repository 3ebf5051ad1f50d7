package main

import (
	"path/filepath"
	"testing"

	"spindex/internal/manifest"
	"spindex/internal/testsupport"
)

const (
	incomingManifest = `{
    "entity.witch.drink": {
        "sounds": [{"name": "pack:entity/witch/drink/b"}],
        "subtitle": "subtitles.entity.witch.drink"
    },
    "music_disc.blocks": {
        "sounds": [{"name": "pack:music_disc/blocks/song", "stream": true}]
    }
}`
	existingManifest = `{
    "entity.witch.drink": {
        "replace": true,
        "sounds": [{"name": "pack:entity/witch/drink/a"}]
    }
}`
)

func TestMergeCommandWritesExisting(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := t.TempDir()
	incoming := filepath.Join(dir, "incoming.json")
	existing := filepath.Join(dir, "sounds.json")
	testsupport.WriteText(t, incoming, incomingManifest)
	testsupport.WriteText(t, existing, existingManifest)

	out, _, err := runCLI(t, env, "", "merge", incoming, existing)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "Wrote 2 events (3 sounds)")

	merged := testsupport.MustLoadManifest(t, existing)
	witch := merged["entity.witch.drink"]
	if witch == nil || len(witch.Sounds) != 2 {
		t.Fatalf("unexpected witch event: %+v", witch)
	}
	if witch.Replace == nil || !*witch.Replace {
		t.Fatalf("replace should be kept from existing")
	}
	if witch.Subtitle == nil || *witch.Subtitle != "subtitles.entity.witch.drink" {
		t.Fatalf("subtitle should be filled from incoming, got %v", witch.Subtitle)
	}
	disc := merged["music_disc.blocks"]
	if disc == nil || !disc.HasSound(manifest.Sound{Name: "pack:music_disc/blocks/song", Attributes: manifest.Attributes{Stream: manifest.Ptr(true)}}) {
		t.Fatalf("expected incoming-only event copied, got %+v", disc)
	}
}

func TestMergeCommandOutputAndStdout(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := t.TempDir()
	incoming := filepath.Join(dir, "incoming.json")
	existing := filepath.Join(dir, "sounds.json")
	output := filepath.Join(dir, "out", "merged.json")
	testsupport.WriteText(t, incoming, incomingManifest)
	testsupport.WriteText(t, existing, existingManifest)

	if _, _, err := runCLI(t, env, "", "merge", incoming, existing, "-o", output); err != nil {
		t.Fatalf("merge -o: %v", err)
	}
	if got := testsupport.ReadText(t, existing); got != existingManifest {
		t.Fatalf("existing manifest should be untouched when -o is set, got %q", got)
	}
	if merged := testsupport.MustLoadManifest(t, output); len(merged) != 2 {
		t.Fatalf("expected 2 events in output, got %v", merged.Names())
	}

	out, _, err := runCLI(t, env, "", "merge", incoming, existing, "--stdout")
	if err != nil {
		t.Fatalf("merge --stdout: %v", err)
	}
	requireContains(t, out, `{"name": "pack:entity/witch/drink/a"}`)
	requireContains(t, out, `"music_disc.blocks"`)
}

func TestMergeCommandRequiresTwoArgs(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env, "", "merge", "only-one.json"); err == nil {
		t.Fatal("expected argument error")
	}
}
