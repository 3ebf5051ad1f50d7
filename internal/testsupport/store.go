package testsupport

import (
	"strings"
	"testing"

	"spindex/internal/manifest"
)

// MustLoadManifest loads the manifest at path or fails the test.
func MustLoadManifest(t testing.TB, path string) manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load manifest %s: %v", path, err)
	}
	return m
}

// MustDecodeManifest parses a manifest literal or fails the test.
func MustDecodeManifest(t testing.TB, data string) manifest.Manifest {
	t.Helper()
	m, err := manifest.Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	return m
}
