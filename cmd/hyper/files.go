package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// findSources expands paths into the script files they name. Directories
// are walked recursively, skipping hidden ones, and only files whose base
// name matches an include pattern are kept. Files named directly are
// always kept.
func findSources(paths, include []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(path))
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if matchesInclude(p, include) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// watchDirs returns the directories to watch for paths: every directory
// findSources would descend into, plus the parent of each file argument.
func watchDirs(paths []string) ([]string, error) {
	var dirs []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(filepath.Clean(path)))
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if p != path && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			dirs = append(dirs, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

func matchesInclude(path string, include []string) bool {
	base := filepath.Base(path)
	for _, pattern := range include {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
