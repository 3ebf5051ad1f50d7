package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"spindex/internal/fileutil"
)

// SoundExt is the only sound file extension Minecraft loads.
const SoundExt = ".ogg"

// namingRules is the pattern Minecraft applies to resource locations.
var namingRules = regexp.MustCompile(`^[a-z0-9/._-]+$`)

// ScanSounds walks soundsDir and returns the .ogg files below it as
// slash-separated paths relative to soundsDir, sorted. A missing folder
// yields no files.
func ScanSounds(soundsDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(soundsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == soundsDir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != SoundExt {
			return nil
		}
		rel, err := filepath.Rel(soundsDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", soundsDir, err)
	}
	sort.Strings(files)
	return files, nil
}

// FilterNames keeps the files whose path satisfies Minecraft's naming rules
// and returns a warning for every file it drops.
func FilterNames(files []string) ([]string, []string) {
	valid := make([]string, 0, len(files))
	var warnings []string
	for _, file := range files {
		if !namingRules.MatchString(file) {
			warnings = append(warnings, file+" <- Path does not match valid naming rules, and will be ignored")
			continue
		}
		valid = append(valid, file)
	}
	return valid, warnings
}

// Overwrites returns a warning for every source file that already exists in
// the target file list.
func Overwrites(source, target []string) []string {
	existing := make(map[string]struct{}, len(target))
	for _, file := range target {
		existing[file] = struct{}{}
	}
	var warnings []string
	for _, file := range source {
		if _, ok := existing[file]; ok {
			warnings = append(warnings, ".../"+file)
		}
	}
	return warnings
}

// CopySounds copies each file from sourceDir/sounds to targetDir/sounds,
// creating folders as needed and preserving permissions and modification
// times. Every copy is verified against the source digest.
func CopySounds(files []string, sourceDir, targetDir string) error {
	for _, file := range files {
		rel := filepath.FromSlash(strings.TrimPrefix(file, "/"))
		src := filepath.Join(sourceDir, SoundsDir, rel)
		dst := filepath.Join(targetDir, SoundsDir, rel)
		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			return fmt.Errorf("copy %s: %w", file, err)
		}
	}
	return nil
}
