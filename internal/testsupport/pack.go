package testsupport

import (
	"path/filepath"
	"testing"

	"spindex/internal/pack"
)

// NewSourcePack creates "<tmp>/<namespace>/sounds" populated with the given
// sound files (slash separated, relative to the sounds folder) and returns
// the namespace folder.
func NewSourcePack(t testing.TB, namespace string, files ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), namespace)
	AddSounds(t, root, files...)
	return root
}

// AddSounds writes placeholder sound files under "<namespaceDir>/sounds".
func AddSounds(t testing.TB, namespaceDir string, files ...string) {
	t.Helper()
	for _, file := range files {
		WriteFile(t, filepath.Join(namespaceDir, pack.SoundsDir, filepath.FromSlash(file)), 16)
	}
	if len(files) == 0 {
		WriteText(t, filepath.Join(namespaceDir, pack.SoundsDir, ".keep"), "")
	}
}

// NewTargetPack creates a complete target layout next to a "minecraft"
// folder whose sounds.json holds manifestJSON, and returns the layout.
func NewTargetPack(t testing.TB, namespace, manifestJSON string) pack.Layout {
	t.Helper()
	layout := pack.TargetLayout(filepath.Join(t.TempDir(), namespace))
	if err := layout.Create(); err != nil {
		t.Fatalf("create target layout: %v", err)
	}
	WriteText(t, layout.ManifestPath, manifestJSON)
	return layout
}
