package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ScanOptions configures a recursive size scan
type ScanOptions struct {
	// IncludeHidden descends into and counts entries whose name starts with "."
	IncludeHidden bool
}

// ScanResult contains the totals of a directory scan
type ScanResult struct {
	// Bytes is the sum of all regular file sizes below the directory
	Bytes uint64
	// Files is the number of regular files counted
	Files int
	// Errors contains any errors encountered during scanning
	Errors []error
}

// ScanDirectory walks dir and totals the regular files below it. Symlinks
// are never followed. Unreadable entries are recorded and skipped.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{Errors: make([]error, 0)}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		// Skip the root directory itself
		if path == dir {
			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to stat %s: %w", path, err))
			return nil
		}
		result.Bytes += uint64(fi.Size())
		result.Files++
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}
