package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidTarget is returned when the target path does not exist or is
// not a directory. It is fatal: nothing has been touched when it occurs.
var ErrInvalidTarget = errors.New("target is not a valid directory")

// Scan lists the regular files directly under targetDir. Subdirectories,
// including category folders left over from a previous run, are skipped.
// Symlinks are followed one level so that a link to a regular file still
// counts as a file. An empty directory yields an empty slice, not an error.
func Scan(targetDir string) ([]FileEntry, error) {
	info, err := os.Stat(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, targetDir)
		}
		return nil, fmt.Errorf("stat target: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, targetDir)
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return nil, fmt.Errorf("read target directory: %w", err)
	}

	var files []FileEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(targetDir, entry.Name())
		if entry.Type()&os.ModeSymlink != 0 {
			resolved, err := os.Stat(path)
			if err != nil || !resolved.Mode().IsRegular() {
				continue
			}
		} else if !entry.Type().IsRegular() {
			continue
		}

		files = append(files, FileEntry{Name: entry.Name(), Path: path})
	}

	return files, nil
}
