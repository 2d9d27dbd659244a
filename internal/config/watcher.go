package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the bursts of write events editors produce.
const watchDebounce = 500 * time.Millisecond

// Watcher reloads the settings file when another process edits it, so a
// running dashboard picks up changes without a restart.
type Watcher struct {
	path     string
	onChange func(*Settings)
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the settings file at path and calls onChange with
// the reloaded settings after each (debounced) modification.
func NewWatcher(path string, onChange func(*Settings)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	// Watch the directory, not the file: saves that replace the file
	// (rename-over) would otherwise drop the watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Stop shuts the watcher down. Safe to call once.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next poll still works.

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		s, err := Load(w.path)
		if err != nil {
			return
		}
		w.onChange(s)
	})
}
