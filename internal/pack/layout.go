package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// SoundsDir is the folder under a namespace that holds sound files.
	SoundsDir = "sounds"
	// MinecraftDir is the namespace folder, next to the pack's own namespace,
	// that holds the manifest.
	MinecraftDir = "minecraft"
	// ManifestFile is the manifest file name inside MinecraftDir.
	ManifestFile = "sounds.json"
)

// ErrSourceNotFound is returned when the source folder does not exist.
var ErrSourceNotFound = errors.New("specified source path not found")

// StructureError reports a folder that is not laid out as a namespace folder.
type StructureError struct {
	Path   string
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s does not appear to be a namespace folder. %s", e.Path, e.Reason)
}

// ValidateSource checks that path exists and holds a single sub-folder named
// "sounds". Plain files next to it (defaults.json, generated output) are fine.
func ValidateSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s is not a valid filesystem path", ErrSourceNotFound, path)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return &StructureError{Path: path, Reason: "Should be a folder."}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	if len(dirs) > 1 {
		return &StructureError{Path: path, Reason: "Should only have one sub-folder."}
	}
	if len(dirs) != 1 || dirs[0] != SoundsDir {
		return &StructureError{Path: path, Reason: "Should have a 'sounds' sub-folder."}
	}
	return nil
}

// Layout names the folders and files making up a target pack.
type Layout struct {
	Namespace    string
	Sounds       string
	Minecraft    string
	ManifestPath string
}

// TargetLayout derives the layout of the target pack rooted at the
// namespace folder path.
func TargetLayout(path string) Layout {
	minecraft := filepath.Join(filepath.Dir(path), MinecraftDir)
	return Layout{
		Namespace:    path,
		Sounds:       filepath.Join(path, SoundsDir),
		Minecraft:    minecraft,
		ManifestPath: filepath.Join(minecraft, ManifestFile),
	}
}

// Complete reports whether every folder and the manifest file exist.
func (l Layout) Complete() bool {
	for _, p := range []string{l.Namespace, l.Sounds, l.Minecraft, l.ManifestPath} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

// Create makes any missing folders and an empty manifest file. Existing
// files are left untouched.
func (l Layout) Create() error {
	for _, dir := range []string{l.Sounds, l.Minecraft} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	file, err := os.OpenFile(l.ManifestPath, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create manifest %q: %w", l.ManifestPath, err)
	}
	return file.Close()
}
