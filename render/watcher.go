package render

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher records which files in a shader directory changed on disk.
// The render loop drains the set with Changed once per frame, so all GL
// work stays on the thread that owns the context.
type Watcher struct {
	dir     string
	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	changed map[string]struct{}
	done    chan struct{}
}

func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("Could not create shader watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("Could not watch %v: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		fsw:     fsw,
		changed: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Editors often save by writing a new file and renaming it over the old one
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Rel(w.dir, event.Name)
			if err != nil {
				continue
			}
			w.mu.Lock()
			w.changed[filepath.ToSlash(name)] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher error", "err", err)
		}
	}
}

// Changed returns the paths, relative to the watched directory, modified
// since the previous call.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	names := make([]string, 0, len(w.changed))
	for name := range w.changed {
		names = append(names, name)
	}
	clear(w.changed)
	sort.Strings(names)
	return names
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
