package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a file must stay quiet before its change is
// reported.
const DebounceDelay = 100 * time.Millisecond

// Watcher reports changes to YAML files in the watched directories.
// A burst of writes to one file is reported once, after the last write.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	delay   time.Duration
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		delay:   DebounceDelay,
	}
	go watcher.run()
	return watcher, nil
}

// WatchFile watches the directory holding path. Editors often replace a
// file rather than write it in place, which a file watch would miss.
func WatchFile(path string) (*Watcher, error) {
	return NewWatcher(filepath.Dir(path))
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]*time.Timer)
	fired := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(w.delay)
				continue
			}
			name := event.Name
			pending[name] = time.AfterFunc(w.delay, func() {
				select {
				case fired <- name:
				case <-w.closeCh:
				}
			})
		case name := <-fired:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// SameFile reports whether an event path refers to target.
func SameFile(event, target string) bool {
	a, errA := filepath.Abs(event)
	b, errB := filepath.Abs(target)
	if errA != nil || errB != nil {
		return filepath.Clean(event) == filepath.Clean(target)
	}
	return a == b
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
