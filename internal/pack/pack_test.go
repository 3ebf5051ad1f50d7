package pack_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"spindex/internal/pack"
	"spindex/internal/testsupport"
)

func TestValidateSource(t *testing.T) {
	valid := testsupport.NewSourcePack(t, "mypack", "weather/rain/r.ogg")
	testsupport.WriteText(t, filepath.Join(valid, "defaults.json"), "{}")
	if err := pack.ValidateSource(valid); err != nil {
		t.Fatalf("ValidateSource returned error: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "nope")
	if err := pack.ValidateSource(missing); !errors.Is(err, pack.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}

	twoDirs := t.TempDir()
	for _, dir := range []string{"sounds", "textures"} {
		if err := os.MkdirAll(filepath.Join(twoDirs, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	requireStructureError(t, pack.ValidateSource(twoDirs), "Should only have one sub-folder.")

	wrongName := t.TempDir()
	if err := os.MkdirAll(filepath.Join(wrongName, "audio"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	requireStructureError(t, pack.ValidateSource(wrongName), "Should have a 'sounds' sub-folder.")

	requireStructureError(t, pack.ValidateSource(t.TempDir()), "Should have a 'sounds' sub-folder.")
}

func requireStructureError(t *testing.T, err error, reason string) {
	t.Helper()
	var serr *pack.StructureError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
	if serr.Reason != reason {
		t.Fatalf("unexpected reason: got %q want %q", serr.Reason, reason)
	}
	if !strings.Contains(err.Error(), "does not appear to be a namespace folder.") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestTargetLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	layout := pack.TargetLayout(filepath.Join(root, "mypack"))
	if layout.Sounds != filepath.Join(root, "mypack", "sounds") {
		t.Fatalf("unexpected sounds dir %q", layout.Sounds)
	}
	if layout.ManifestPath != filepath.Join(root, "minecraft", "sounds.json") {
		t.Fatalf("unexpected manifest path %q", layout.ManifestPath)
	}
	if layout.Complete() {
		t.Fatal("layout should be incomplete before Create")
	}
	if err := layout.Create(); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !layout.Complete() {
		t.Fatal("layout should be complete after Create")
	}

	testsupport.WriteText(t, layout.ManifestPath, `{"weather.rain": {"sounds": []}}`)
	if err := layout.Create(); err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}
	if got := testsupport.ReadText(t, layout.ManifestPath); got != `{"weather.rain": {"sounds": []}}` {
		t.Fatalf("Create must not truncate an existing manifest, got %q", got)
	}
}

func TestScanSounds(t *testing.T) {
	root := testsupport.NewSourcePack(t, "mypack",
		"weather/rain/b.ogg",
		"entity/witch/drink/a.ogg",
		"top.ogg",
	)
	testsupport.WriteText(t, filepath.Join(root, "sounds", "notes.txt"), "ignored")

	files, err := pack.ScanSounds(filepath.Join(root, "sounds"))
	if err != nil {
		t.Fatalf("ScanSounds returned error: %v", err)
	}
	want := []string{"entity/witch/drink/a.ogg", "top.ogg", "weather/rain/b.ogg"}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v want %v", files, want)
	}

	none, err := pack.ScanSounds(filepath.Join(t.TempDir(), "missing"))
	if err != nil || len(none) != 0 {
		t.Fatalf("missing folder: got %v, %v", none, err)
	}
}

func TestFilterNames(t *testing.T) {
	files := []string{
		"entity/witch/drink/a.ogg",
		"Entity/witch/drink/b.ogg",
		"entity/witch/drink/with space.ogg",
		"entity/witch/drink/ok_name-2.ogg",
	}
	valid, warnings := pack.FilterNames(files)
	if len(valid) != 2 || valid[0] != files[0] || valid[1] != files[3] {
		t.Fatalf("unexpected valid files %v", valid)
	}
	want := []string{
		"Entity/witch/drink/b.ogg <- Path does not match valid naming rules, and will be ignored",
		"entity/witch/drink/with space.ogg <- Path does not match valid naming rules, and will be ignored",
	}
	if strings.Join(warnings, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got warnings %v want %v", warnings, want)
	}
}

func TestOverwrites(t *testing.T) {
	got := pack.Overwrites(
		[]string{"a/b/c.ogg", "a/b/d.ogg"},
		[]string{"a/b/d.ogg", "x/y.ogg"},
	)
	if len(got) != 1 || got[0] != ".../a/b/d.ogg" {
		t.Fatalf("unexpected overwrites %v", got)
	}
	if pack.Overwrites([]string{"a.ogg"}, nil) != nil {
		t.Fatal("expected no warnings")
	}
}

func TestCopySounds(t *testing.T) {
	source := testsupport.NewSourcePack(t, "mypack", "weather/rain/r.ogg")
	src := filepath.Join(source, "sounds", "weather", "rain", "r.ogg")
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	target := filepath.Join(t.TempDir(), "target")
	if err := pack.CopySounds([]string{"weather/rain/r.ogg"}, source, target); err != nil {
		t.Fatalf("CopySounds returned error: %v", err)
	}

	dst := filepath.Join(target, "sounds", "weather", "rain", "r.ogg")
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if info.Size() != 16 {
		t.Fatalf("unexpected size %d", info.Size())
	}
	if !info.ModTime().Equal(stamp) {
		t.Fatalf("modification time not preserved: %v", info.ModTime())
	}

	if err := pack.CopySounds([]string{"missing.ogg"}, source, target); err == nil {
		t.Fatal("expected error for missing source file")
	}
}
