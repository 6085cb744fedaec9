package auth

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TokenWatcher notices when the token file disappears underneath a running
// session, e.g. `leadcrm logout` in another terminal. The interactive UI uses
// it to drop back to the login screen instead of failing on the next call.
type TokenWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchToken watches the token file at path and invokes onCleared (once per
// removal) when it is deleted or renamed away. The containing directory is
// watched rather than the file itself so recreation keeps working.
func WatchToken(path string, onCleared func(), log *zap.Logger) (*TokenWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	tw := &TokenWatcher{watcher: w, done: make(chan struct{})}
	name := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
					log.Info("token removed externally")
					onCleared()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("token watch error", zap.Error(err))
			case <-tw.done:
				return
			}
		}
	}()
	return tw, nil
}

// Close stops the watcher.
func (tw *TokenWatcher) Close() error {
	close(tw.done)
	return tw.watcher.Close()
}
