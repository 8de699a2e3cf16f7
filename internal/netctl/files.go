package netctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindProfiles lists the regular files directly inside dir, in directory
// order. Non-regular entries (directories, sockets, symlinked specials)
// and entries whose metadata cannot be read are silently skipped; only a
// failure to open the directory itself is an error.
func FindProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between readdir and stat.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// ResolveInputs expands user-provided profile paths. Plain paths are
// checked for existence; patterns containing glob characters are expanded
// with doublestar (so ** works). Duplicates are dropped, order of first
// appearance is kept.
func ResolveInputs(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolveInput(pattern)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no matching profiles found")
	}
	return files, nil
}

func resolveInput(pattern string) ([]string, error) {
	if strings.ContainsAny(pattern, "*?[") {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		var filtered []string
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			filtered = append(filtered, m)
		}
		return filtered, nil
	}

	// Literal path. Existence is verified here so a typo is reported
	// against the argument rather than as a per-file conversion failure.
	if _, err := os.Stat(pattern); err != nil {
		return nil, fmt.Errorf("profile not found: %s", pattern)
	}
	return []string{pattern}, nil
}
