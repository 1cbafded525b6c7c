package behavioral

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay coalesces bursts of transcript writes into one change.
const DefaultDebounceDelay = 2 * time.Second

// ChangeSet is a debounced batch of data files that changed.
type ChangeSet struct {
	Paths []string // sorted, deduplicated
	At    time.Time
}

// FileWatcher watches the history log, the projects tree and the facets
// directory of a Claude data directory.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	layout  DataLayout
	changes chan ChangeSet
	errors  chan error
	done    chan struct{}

	mu      sync.Mutex
	delay   time.Duration
	pending map[string]struct{}
	timer   *time.Timer
	closed  bool
}

// NewFileWatcher starts watching the data directory rooted at claudeDir.
// Subtrees that do not exist yet are picked up when they are created.
func NewFileWatcher(claudeDir string, delay time.Duration) (*FileWatcher, error) {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	root := filepath.Clean(claudeDir)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat claude dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("claude dir %s is not a directory", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		layout:  DataLayout{Root: root},
		changes: make(chan ChangeSet, 1),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
		delay:   delay,
		pending: make(map[string]struct{}),
	}

	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	for _, dir := range fw.watchedTrees() {
		if err := fw.addRecursive(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go fw.processEvents()
	return fw, nil
}

// watchedTrees are the directories whose whole subtree is watched.
func (fw *FileWatcher) watchedTrees() []string {
	return []string{
		fw.layout.ProjectsDir(),
		filepath.Dir(fw.layout.FacetsDir()),
	}
}

// inWatchedTree reports whether path is one of the watched trees or below one.
func (fw *FileWatcher) inWatchedTree(path string) bool {
	for _, dir := range fw.watchedTrees() {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (fw *FileWatcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.watcher.Add(path); err != nil && !errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.reportError(err)
		}
	}
}

func (fw *FileWatcher) reportError(err error) {
	select {
	case fw.errors <- err:
	default:
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if event.Has(fsnotify.Create) && fw.inWatchedTree(path) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := fw.addRecursive(path); err != nil {
				fw.reportError(err)
			}
			return
		}
	}

	if event.Op == fsnotify.Chmod || !fw.relevant(path) {
		return
	}
	fw.schedule(path)
}

// relevant reports whether path is a data file the summary is built from.
func (fw *FileWatcher) relevant(path string) bool {
	if path == fw.layout.HistoryPath() {
		return true
	}
	if strings.HasPrefix(path, fw.layout.ProjectsDir()+string(filepath.Separator)) {
		return filepath.Ext(path) == transcriptExt
	}
	if filepath.Dir(path) == fw.layout.FacetsDir() {
		return filepath.Ext(path) == facetExt
	}
	return false
}

// schedule records path and restarts the debounce timer.
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}
	fw.pending[path] = struct{}{}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.mu.Lock()
	if fw.closed || len(fw.pending) == 0 {
		fw.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(fw.pending))
	for p := range fw.pending {
		paths = append(paths, p)
	}
	fw.pending = make(map[string]struct{})
	fw.timer = nil
	fw.mu.Unlock()

	sort.Strings(paths)
	select {
	case fw.changes <- ChangeSet{Paths: paths, At: time.Now()}:
	case <-fw.done:
	default:
		// a change is already queued; the consumer rereads everything anyway
	}
}

// Changes delivers debounced change batches.
func (fw *FileWatcher) Changes() <-chan ChangeSet {
	return fw.changes
}

// Errors delivers watcher errors. Errors are dropped when nobody reads them.
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// Close stops the watcher. It is safe to call more than once.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	close(fw.done)
	return fw.watcher.Close()
}
