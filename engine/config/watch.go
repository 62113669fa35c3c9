package config

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/frostpine/garland/engine/core"
)

// Watcher reloads a tuning file whenever it changes on disk and hands the
// parsed result to a callback. Reload failures keep the previous tuning.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

func NewWatcher(path string, onReload func(*Tuning)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save,
	// which drops a file-level watch.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) run(onReload func(*Tuning)) {
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != filepath.Clean(w.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			t, err := Load(w.path)
			if err != nil {
				core.LogWarn("tuning reload skipped: %v", err)
				continue
			}
			core.LogInfo("tuning reloaded from %s", w.path)
			onReload(t)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("tuning watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return errors.New("tuning watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
