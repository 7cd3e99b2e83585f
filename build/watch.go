package build

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gcl/report"
)

// watchDebounce is how long the watch loop waits after the last change event
// before rebuilding.  Editors commonly produce bursts of events per save.
const watchDebounce = 250 * time.Millisecond

// Watch runs the given rebuild function once and then again every time the
// source file at the given path changes, until the watcher fails or the
// process is interrupted.
func Watch(srcPath string, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the containing directory rather than the file itself: editors
	// that save by rename would otherwise detach the watch.
	if err := watcher.Add(filepath.Dir(srcPath)); err != nil {
		return err
	}

	rebuild()

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != srcPath {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			report.PrintWarningMessage("Watch", err.Error())
		case <-pending:
			pending = nil
			report.Reset()
			rebuild()
		}
	}
}
