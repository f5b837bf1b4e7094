package character

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor produces when
// saving a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports configuration files that changed on disk.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func(slug string)
	onError  func(error)

	fsw    *fsnotify.Watcher
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the debounce duration.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnError sets the callback invoked on watcher errors.
func WithOnError(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch starts watching dir. onChange receives the slug of every
// created, written, renamed or removed configuration file.
func Watch(dir string, onChange func(slug string), opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("character: watch: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("character: watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:      dir,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  func(error) {},
		fsw:      fsw,
		cancel:   cancel,
		done:     make(chan struct{}),
		pending:  make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run(ctx)
	return w, nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, fileExt) {
				continue
			}
			slug := strings.TrimSuffix(name, fileExt)
			if !ValidSlug(slug) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.trigger(slug)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) trigger(slug string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[slug]; ok {
		t.Stop()
	}
	w.pending[slug] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, slug)
		w.mu.Unlock()
		w.onChange(slug)
	})
}

// Close stops the watcher and any pending notifications.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fsw.Close()
	<-w.done
	w.mu.Lock()
	for slug, t := range w.pending {
		t.Stop()
		delete(w.pending, slug)
	}
	w.mu.Unlock()
	return err
}
