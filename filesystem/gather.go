package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type GatherOptions struct {
	// Extensions selects files inside directories, compared case-insensitively.
	Extensions []string
	// Recursive descends into subdirectories.
	Recursive bool
}

// GatherFiles expands roots into absolute file paths. Directories contribute their files
// with a matching extension, sorted by path. Files named directly are always kept, even if
// they do not exist, so the caller can report them.
func GatherFiles(roots []string, opts GatherOptions) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range opts.Extensions {
			if strings.ToLower(e) == ext {
				return true
			}
		}
		return false
	}

	var (
		paths []string
		seen  = make(map[string]bool)
	)

	appendAbsPath := func(path string) error {
		path, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("absolute path: %w", err)
		}
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
		return nil
	}

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil || !fi.IsDir() {
			if err := appendAbsPath(root); err != nil {
				return nil, err
			}
			continue
		}

		var found []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && !opts.Recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(d.Name()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("read dir: %w", err)
		}

		sort.Strings(found)
		for _, path := range found {
			if err := appendAbsPath(path); err != nil {
				return nil, err
			}
		}
	}

	return paths, nil
}
