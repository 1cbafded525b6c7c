// Package fileutil provides depth-bounded directory scanning used to locate
// session data files.
//
// ScanDirectory walks a root directory and returns the absolute paths of the
// files whose extension and depth match a ScanOptions value. Depth is counted
// in path components relative to the root, so a file directly inside the root
// has depth 1 and a file inside one of its subdirectories has depth 2:
//
//	result, err := fileutil.ScanDirectory(projectsDir, fileutil.ScanOptions{
//	    Extensions:    []string{".jsonl"},
//	    MinDepth:      2,
//	    MaxDepth:      2,
//	    IncludeHidden: true,
//	})
//
// Errors on individual entries (for example a subdirectory that cannot be
// read) are collected in ScanResult.Errors and the walk continues. A missing
// root is reported as an error that wraps fs.ErrNotExist so callers can treat
// it as an empty result.
//
// Output is sorted so repeated scans of the same tree are identical.
package fileutil
