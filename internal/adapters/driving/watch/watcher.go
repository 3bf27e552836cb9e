// Package watch analyses text files dropped into an inbox directory.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before it is analysed.
const DefaultDebounce = 500 * time.Millisecond

// watchedExt is the only file extension picked up.
const watchedExt = ".txt"

// Result reports the outcome for one inbox file.
type Result struct {
	Path     string
	Analysis *domain.Analysis
	Err      error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period after the last write.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithResultHandler receives every analysis outcome.
func WithResultHandler(fn func(Result)) Option {
	return func(w *Watcher) { w.onResult = fn }
}

// Watcher analyses each created or rewritten .txt file in a directory once
// per burst of writes.
type Watcher struct {
	dir      string
	analyses driving.AnalysisService
	debounce time.Duration
	onResult func(Result)

	mu      sync.Mutex
	pending map[string]*time.Timer
	timers  sync.WaitGroup
}

// New creates a watcher for dir.
func New(dir string, analyses driving.AnalysisService, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		analyses: analyses,
		debounce: DefaultDebounce,
		pending:  make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches until ctx is cancelled. The directory is created if missing.
// Files are analysed one at a time on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return fmt.Errorf("creating inbox: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("watching inbox", "dir", w.dir)

	return w.loop(ctx, fsw.Events, fsw.Errors)
}

// loop debounces events and analyses ready files until ctx is cancelled or
// either channel closes. Pending timers are stopped and fired callbacks
// have exited by the time it returns.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	ready := make(chan string)
	done := make(chan struct{})
	defer func() {
		close(done)
		w.stopPending()
		w.timers.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if path, ok := w.handleFsEvent(event); ok {
				w.schedule(path, ready, done)
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)

		case path := <-ready:
			w.analyze(ctx, path)
		}
	}
}

// handleFsEvent returns the path to analyse for a create or write of a
// visible .txt regular file.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return "", false
	}
	if !strings.EqualFold(filepath.Ext(base), watchedExt) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return event.Name, true
}

// schedule (re)starts the quiet-period timer for path. A fired timer hands
// path to ready, or gives up once done is closed.
func (w *Watcher) schedule(path string, ready chan<- string, done <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok && t.Stop() {
		w.timers.Done()
	}

	w.timers.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		defer w.timers.Done()

		w.mu.Lock()
		if w.pending[path] == t {
			delete(w.pending, path)
		}
		w.mu.Unlock()

		select {
		case ready <- path:
		case <-done:
		}
	})
	w.pending[path] = t
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, t := range w.pending {
		if t.Stop() {
			w.timers.Done()
		}
		delete(w.pending, path)
	}
}

func (w *Watcher) analyze(ctx context.Context, path string) {
	result := Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", path, err)
	} else {
		result.Analysis, result.Err = w.analyses.Analyze(ctx, filepath.Base(path), content)
	}

	if result.Err != nil {
		logger.Warn("inbox analysis failed", "path", path, "err", result.Err)
	} else {
		logger.Info("inbox analysis complete",
			"path", path, "id", result.Analysis.ID, "topic", result.Analysis.Assignment().TopicID)
	}

	if w.onResult != nil {
		w.onResult(result)
	}
}
