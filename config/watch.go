package config

import (
	"log"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before its change is
// reported. Editors often write a file several times when saving.
const settleDelay = 100 * time.Millisecond

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher collects changes to files with given extensions in a set of
// directories. Changes are batched until the directory has been quiet for
// settleDelay and then handed out by Drain.
type Watcher struct {
	fs   *fsnotify.Watcher
	exts []string

	mu      sync.Mutex
	settled []string

	changed chan struct{}
	quit    chan struct{}
	done    chan struct{}
	stop    sync.Once
}

// NewWatcher watches dirs for files ending in one of exts (".yaml", ".tengo").
func NewWatcher(exts []string, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		changed: make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, ext := range exts {
		w.exts = append(w.exts, strings.ToLower(ext))
	}
	go w.loop()
	return w, nil
}

// Changed receives a value whenever a new batch is ready to Drain.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Drain returns the files that settled since the last call, without
// blocking. Each path appears once.
func (w *Watcher) Drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := w.settled
	w.settled = nil
	return out
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.quit)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]struct{})
	timer := time.NewTimer(settleDelay)
	timer.Stop()

	for {
		select {
		case <-w.quit:
			timer.Stop()
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&watchedOps == 0 || !w.wants(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(settleDelay)

		case <-timer.C:
			w.publish(pending)
			clear(pending)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch: %v", err)
		}
	}
}

func (w *Watcher) publish(pending map[string]struct{}) {
	if len(pending) == 0 {
		return
	}

	w.mu.Lock()
	for name := range pending {
		if !slices.Contains(w.settled, name) {
			w.settled = append(w.settled, name)
		}
	}
	slices.Sort(w.settled)
	w.mu.Unlock()

	select {
	case w.changed <- struct{}{}:
	default:
	}
}

func (w *Watcher) wants(path string) bool {
	return slices.Contains(w.exts, strings.ToLower(filepath.Ext(path)))
}
