package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"searchfind/internal/catalog"
	"searchfind/internal/common"
	"searchfind/internal/errors"
)

const defaultCatalogDebounce = 500 * time.Millisecond

// CatalogWatcher watches the catalog override file and triggers reloads.
// Editors and deploy tools often replace files with a rename, so the
// containing directory is watched and events are filtered by name.
type CatalogWatcher struct {
	mu sync.Mutex

	path        string
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	reloadCallback func()
	logger         *errors.Logger

	running bool
}

// NewCatalogWatcher creates a watcher for the catalog file at path
func NewCatalogWatcher(path string, reloadCallback func(), logger *errors.Logger) (*CatalogWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}
	if logger == nil {
		logger = errors.NopLogger()
	}
	return &CatalogWatcher{
		path:           abs,
		debounceDelay:  defaultCatalogDebounce,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// SetDebounceDelay changes how long the watcher waits for writes to settle
func (cw *CatalogWatcher) SetDebounceDelay(d time.Duration) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.debounceDelay = d
}

// Start begins watching the catalog file
func (cw *CatalogWatcher) Start() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.running {
		return fmt.Errorf("catalog watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(cw.path)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			cw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	cw.fsWatcher = watcher
	if stat, err := os.Stat(cw.path); err == nil {
		cw.lastModTime = stat.ModTime()
	}

	cw.running = true
	go cw.watchLoop()

	cw.logger.Info("Catalog file watcher started",
		"file", cw.path,
		"debounce_delay", cw.debounceDelay)
	return nil
}

// Stop stops the catalog watcher
func (cw *CatalogWatcher) Stop() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !cw.running {
		return nil
	}

	close(cw.stopChan)
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.running = false

	if err := cw.fsWatcher.Close(); err != nil {
		cw.logger.LogError(err, "Failed to close file system watcher")
		return err
	}

	cw.logger.Info("Catalog file watcher stopped")
	return nil
}

// IsRunning returns whether the watcher is currently running
func (cw *CatalogWatcher) IsRunning() bool {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.running
}

// Path returns the absolute path being watched
func (cw *CatalogWatcher) Path() string {
	return cw.path
}

func (cw *CatalogWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-cw.fsWatcher.Events:
			if !ok {
				return
			}
			if cw.shouldProcessEvent(event) {
				cw.scheduleReload()
			}

		case err, ok := <-cw.fsWatcher.Errors:
			if !ok {
				return
			}
			cw.logger.LogError(err, "File watcher error")

		case <-cw.reloadChan:
			if cw.hasFileChanged() {
				cw.logger.Info("Catalog file changed, triggering reload", "file", cw.path)
				cw.reloadCallback()
			}

		case <-cw.stopChan:
			return
		}
	}
}

// shouldProcessEvent reports whether event touches the catalog file
func (cw *CatalogWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != cw.path && filepath.Base(event.Name) != filepath.Base(cw.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// hasFileChanged compares the modification time with the last one seen.
// A missing file is not a change: the old catalog stays in service.
func (cw *CatalogWatcher) hasFileChanged() bool {
	stat, err := os.Stat(cw.path)
	if err != nil {
		return false
	}
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if !stat.ModTime().Equal(cw.lastModTime) {
		cw.lastModTime = stat.ModTime()
		return true
	}
	return false
}

// scheduleReload schedules a debounced reload
func (cw *CatalogWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}

	cw.debounceTimer = time.AfterFunc(cw.debounceDelay, func() {
		select {
		case cw.reloadChan <- struct{}{}:
		default:
			// Reload already scheduled
		}
	})
}

// buildToolkit wires a toolkit to cat with the server's shared collaborators
func (s *Server) buildToolkit(cat *catalog.Catalog) *common.Toolkit {
	return common.NewToolkit(cat, s.AppConfig, s.toolkitOptions())
}

// reloadCatalog rebuilds the toolkit from the catalog file and swaps it in.
// In-flight requests finish on the toolkit they started with. A catalog
// that fails to load leaves the current one in service.
func (s *Server) reloadCatalog() {
	ctx := context.Background()
	cat, err := common.LoadCatalog(s.AppConfig.Catalog.Path)
	if err != nil {
		s.Logger.LogError(err, "Catalog reload failed, keeping current catalog",
			"path", s.AppConfig.Catalog.Path)
		s.obs.RecordCatalogReload(ctx, false)
		return
	}
	s.toolkit.Store(s.buildToolkit(cat))
	s.obs.RecordCatalogReload(ctx, true)
	s.Logger.Info("Reference catalog reloaded",
		"path", s.AppConfig.Catalog.Path,
		"skills", cat.Stats().Skills)
}
