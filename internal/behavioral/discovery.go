package behavioral

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/harrison/ccwrapped/internal/fileutil"
)

const (
	historyFileName = "history.jsonl"
	projectsDirName = "projects"
	transcriptExt   = ".jsonl"
	facetExt        = ".json"
)

// facetsDirParts locates facet annotations under the data directory.
var facetsDirParts = []string{"usage-data", "facets"}

// TranscriptFile is a transcript discovered under the projects directory.
type TranscriptFile struct {
	Project   string `json:"project"`    // owning project directory name
	SessionID string `json:"session_id"` // file name without extension
	Path      string `json:"path"`       // absolute path
}

// IsUUID reports whether the session ID is a canonical session UUID, as
// opposed to a sidechain file such as agent-1a2b3c4d.
func (tf TranscriptFile) IsUUID() bool {
	_, err := uuid.Parse(tf.SessionID)
	return err == nil && len(tf.SessionID) == 36
}

// DataLayout resolves the source locations inside a data directory.
type DataLayout struct {
	Root string
}

// HistoryPath returns the flat history log path.
func (l DataLayout) HistoryPath() string {
	return filepath.Join(l.Root, historyFileName)
}

// ProjectsDir returns the transcript tree root.
func (l DataLayout) ProjectsDir() string {
	return filepath.Join(l.Root, projectsDirName)
}

// FacetsDir returns the facet annotation directory.
func (l DataLayout) FacetsDir() string {
	return filepath.Join(append([]string{l.Root}, facetsDirParts...)...)
}

// DiscoverTranscripts lists every transcript file sitting directly inside an
// immediate subdirectory of projectsDir, sorted by path. A missing
// projectsDir yields no files.
func DiscoverTranscripts(projectsDir string) ([]TranscriptFile, error) {
	result, err := fileutil.ScanDirectory(projectsDir, fileutil.ScanOptions{
		Extensions:    []string{transcriptExt},
		MinDepth:      2,
		MaxDepth:      2,
		IncludeHidden: true,
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []TranscriptFile{}, nil
		}
		return nil, fmt.Errorf("failed to discover transcripts: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("failed to discover transcripts: %w", errors.Join(result.Errors...))
	}

	files := make([]TranscriptFile, 0, len(result.Files))
	for _, path := range result.Files {
		files = append(files, TranscriptFile{
			Project:   filepath.Base(filepath.Dir(path)),
			SessionID: sessionIDFromFilename(path),
			Path:      path,
		})
	}
	return files, nil
}

// DiscoverFacets lists facet files in facetsDir, sorted by path. A missing
// directory yields no files.
func DiscoverFacets(facetsDir string) ([]string, error) {
	result, err := fileutil.ScanDirectory(facetsDir, fileutil.ScanOptions{
		Extensions: []string{facetExt},
		MaxDepth:   1,
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to discover facets: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("failed to discover facets: %w", errors.Join(result.Errors...))
	}
	return result.Files, nil
}
