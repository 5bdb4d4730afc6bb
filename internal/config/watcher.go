package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("config watcher closed")

// ReloadFunc receives the freshly loaded configuration, or the load
// error if the file became unreadable.
type ReloadFunc func(*Config, error)

// Watcher reloads the configuration whenever the file changes on
// disk. Editors writing via rename (most of them) generate bursts of
// events; reloads are debounced to one per burst.
type Watcher struct {
	mu sync.Mutex

	path     string
	watcher  *fsnotify.Watcher
	reload   ReloadFunc
	debounce time.Duration
	timer    *time.Timer

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// NewWatcher watches path and invokes reload after each change. The
// parent directory is watched, not the file, so atomic-rename saves
// are observed.
func NewWatcher(path string, debounce time.Duration, reload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	w := &Watcher{
		path:     abs,
		watcher:  fsw,
		reload:   reload,
		debounce: debounce,
		closeCh:  make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.doneWg.Done()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		cfg, err := Load(w.path)
		w.reload(cfg, err)
	})
}
