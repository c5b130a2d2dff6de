// Package fileutil discovers source files to lint.
package fileutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// HasValidExtension checks if a file has one of the valid extensions
func HasValidExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// NormalizeExtensions trims entries and adds a leading dot where missing
func NormalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// FindFiles finds all files with the given extensions under root. Hidden
// directories and directories named in exclude are skipped.
func FindFiles(root string, extensions []string, recursive bool, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			baseName := d.Name()
			if strings.HasPrefix(baseName, ".") || slices.Contains(exclude, baseName) {
				return filepath.SkipDir
			}
			// Skip subdirectories if not recursive
			if !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if HasValidExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	return files, err
}
