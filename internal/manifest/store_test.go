package manifest_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"spindex/internal/logging"
	"spindex/internal/manifest"
)

func TestStoreUpdateMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds.json")
	existing := manifest.Manifest{"weather.rain": {Sounds: []manifest.Sound{{Name: "p:a"}}}}
	if err := manifest.Save(path, existing); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	store := manifest.OpenStore(path, logging.NewNop())
	if store.Path() != path {
		t.Fatalf("unexpected path %q", store.Path())
	}
	incoming := manifest.Manifest{"weather.rain": {Sounds: []manifest.Sound{{Name: "p:b"}}}}
	updated, err := store.Update(func(current manifest.Manifest) manifest.Manifest {
		return manifest.Merge(incoming, current)
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated["weather.rain"].Sounds) != 2 {
		t.Fatalf("unexpected updated manifest: %+v", updated)
	}

	loaded, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !loaded.Equal(updated) {
		t.Fatalf("saved manifest differs from returned one")
	}
}

func TestStoreUpdateLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds.json")
	held := flock.New(path + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("take lock: %v %v", ok, err)
	}
	defer held.Unlock()

	store := manifest.OpenStore(path, nil)
	called := false
	_, err = store.Update(func(m manifest.Manifest) manifest.Manifest {
		called = true
		return m
	})
	if !errors.Is(err, manifest.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if called {
		t.Fatal("update function must not run without the lock")
	}
}
