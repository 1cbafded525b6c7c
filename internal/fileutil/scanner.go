package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".jsonl", "json").
	// Matching is case-insensitive. Empty means every file.
	Extensions []string
	// MinDepth skips files shallower than this depth (0 or 1 = root files included)
	MinDepth int
	// MaxDepth limits how deep files may sit (0 = unlimited)
	MaxDepth int
	// IncludeHidden descends into directories whose name starts with "."
	IncludeHidden bool
	// ExcludeDirs is a list of directory names to skip entirely
	ExcludeDirs []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched files, sorted
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory scans dir for files matching opts.
// A missing dir yields an error wrapping fs.ErrNotExist.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	extMap := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if path == root {
			return nil
		}

		depth := pathDepth(root, path)

		if d.IsDir() {
			if excludeMap[d.Name()] || (!opts.IncludeHidden && strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			// a directory at depth N only holds files at depth N+1
			if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if opts.MinDepth > 0 && depth < opts.MinDepth {
			return nil
		}
		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)
	return result, nil
}

// pathDepth returns the number of path components of path below root.
func pathDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
