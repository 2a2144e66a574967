package repo

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mzki/parkfile/util/log"
)

// Watcher invalidates a repository's cached summaries when scenario
// files under its directory change on disk.
type Watcher struct {
	repo *ScenarioRepository
	w    *fsnotify.Watcher

	events chan fsnotify.Event
	done   chan struct{}
}

// NewWatcher starts watching the repository directory. Close stops it.
func NewWatcher(repo *ScenarioRepository) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(repo.config.Dir); err != nil {
		w.Close()
		return nil, err
	}
	watcher := &Watcher{
		repo:   repo,
		w:      w,
		events: make(chan fsnotify.Event),
		done:   make(chan struct{}),
	}
	go watcher.eventLoop()
	return watcher, nil
}

// Events exposes the debounced change events, one per settled file
// change, after the repository cache has been invalidated. Receiving is
// optional; unconsumed events are dropped.
func (watcher *Watcher) Events() <-chan fsnotify.Event { return watcher.events }

// Close stops the watcher.
func (watcher *Watcher) Close() error {
	select {
	case <-watcher.done:
	default:
		close(watcher.done)
	}
	return watcher.w.Close()
}

// The backend fires the same event several times for one logical file
// change depending on the writing application. Events are pooled for a
// short window and handled once per (path, op) after the window closes.
// See https://github.com/fsnotify/fsnotify/issues/122
func (watcher *Watcher) eventLoop() {
	defer close(watcher.events)
	const pendingDuration = 100 * time.Millisecond
	pendingTimer := time.NewTimer(pendingDuration)
	<-pendingTimer.C
	pendingEvents := make(map[fsnotify.Event]bool)
	for {
		select {
		case <-watcher.done:
			return
		case ev, ok := <-watcher.w.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), scenarioFileExt) {
				continue
			}
			pendingEvents[ev] = true
			if !pendingTimer.Stop() {
				select {
				case <-pendingTimer.C:
				default:
				}
			}
			pendingTimer.Reset(pendingDuration)
		case err, ok := <-watcher.w.Errors:
			if !ok {
				return
			}
			log.Debugf("repo: watch error: %v", err)
		case <-pendingTimer.C:
			for ev := range pendingEvents {
				watcher.repo.Invalidate(ev.Name)
				select {
				case watcher.events <- ev:
				default:
				}
				delete(pendingEvents, ev)
			}
		}
	}
}
