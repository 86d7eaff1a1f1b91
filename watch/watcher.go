// Package watch reruns generation when source files change.
//
// fsnotify does not recurse, so the watcher adds every directory under its
// roots and picks up directories created later. Bursts of events (editors
// writing temp files, gofmt on save) collapse into one run after a quiet
// period.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/logger"
)

// DefaultDebounce is the quiet period before a change triggers a run
const DefaultDebounce = 500 * time.Millisecond

// DefaultExtensions are the files that can affect generated output
var DefaultExtensions = []string{".go", ".yaml", ".yml", ".toml"}

// ChangeFunc is called once per debounced burst with the changed paths, sorted.
// Errors are logged and watching continues.
type ChangeFunc func(ctx context.Context, changed []string) error

// Config selects what to watch
type Config struct {
	// Roots are watched recursively
	Roots []string

	// Exclude lists directories whose events are ignored, typically the
	// output directory so writing generated files does not retrigger a run
	Exclude []string

	// Extensions filters events by file extension; empty means DefaultExtensions
	Extensions []string

	// Debounce is the quiet period; zero means DefaultDebounce
	Debounce time.Duration

	// MaxRunsPerMinute caps how often fn runs; zero means no cap
	MaxRunsPerMinute int
}

// Watcher watches source trees for changes
type Watcher struct {
	fs         *fsnotify.Watcher
	exclude    []string
	extensions map[string]bool
	debounce   time.Duration
	limiter    *rate.Limiter
	logger     *zap.SugaredLogger

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	fire    chan struct{}
}

// New creates a watcher and registers every directory under cfg.Roots
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Roots) == 0 {
		return nil, errors.New("watch: no roots given")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		fs:         fsw,
		extensions: make(map[string]bool),
		debounce:   cfg.Debounce,
		logger:     logger.ComponentLogger("watch"),
		pending:    make(map[string]struct{}),
		fire:       make(chan struct{}, 1),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if cfg.MaxRunsPerMinute < 0 {
		fsw.Close()
		return nil, errors.Newf("watch: max runs per minute must be >= 0, got %d", cfg.MaxRunsPerMinute)
	}
	if cfg.MaxRunsPerMinute > 0 {
		w.limiter = rate.NewLimiter(rate.Limit(float64(cfg.MaxRunsPerMinute)/60.0), 1)
	}

	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	for _, ext := range extensions {
		w.extensions[strings.ToLower(ext)] = true
	}

	for _, dir := range cfg.Exclude {
		abs, err := filepath.Abs(dir)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "invalid exclude path %s", dir)
		}
		w.exclude = append(w.exclude, abs)
	}

	for _, root := range cfg.Roots {
		if err := w.addTree(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// addTree watches dir and all directories below it, skipping hidden,
// vendored and excluded ones
func (w *Watcher) addTree(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, "invalid watch root %s", root)
	}

	return filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if (path != abs && skipDir(d.Name())) || w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		w.logger.Debugw("Watching directory", logger.FieldPath, path)
		return nil
	})
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules"
}

func (w *Watcher) excluded(path string) bool {
	for _, dir := range w.exclude {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// relevant reports whether an event should schedule a run
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if w.excluded(event.Name) || isBackupFile(event.Name) {
		return false
	}
	return w.extensions[strings.ToLower(filepath.Ext(event.Name))]
}

// isBackupFile matches files written by config.Save and editor swap files
func isBackupFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".back") || strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#")
}

// Run watches until ctx is cancelled, calling fn after each debounced burst.
// fn never runs concurrently with itself. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, fn ChangeFunc) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)

		case <-w.fire:
			if w.limiter != nil {
				if err := w.limiter.Wait(ctx); err != nil {
					// cancelled while waiting for the next slot
					return nil
				}
			}
			changed := w.drain()
			if len(changed) == 0 {
				continue
			}
			w.logger.Infow("Change detected", logger.FieldCount, len(changed), "first", changed[0])
			if err := fn(ctx, changed); err != nil {
				w.logger.Errorw("Change handler failed", logger.FieldError, err)
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !skipDir(info.Name()) && !w.excluded(event.Name) {
				if err := w.addTree(event.Name); err != nil {
					w.logger.Warnw("Failed to watch new directory", logger.FieldPath, event.Name, logger.FieldError, err)
				}
			}
			return
		}
	}

	if !w.relevant(event) {
		return
	}
	w.logger.Debugw("File changed", logger.FieldFile, event.Name, logger.FieldOp, event.Op.String())
	w.schedule(event.Name)
}

// schedule records path and restarts the debounce timer
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]struct{})
	sort.Strings(changed)
	return changed
}

// Close stops watching
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fs.Close()
}
