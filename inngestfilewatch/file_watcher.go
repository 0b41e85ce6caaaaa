package inngestfilewatch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

const (
	// retryInterval is how long to wait before trying again to watch a directory that could not be watched.
	retryInterval = time.Second
	// settleInterval is how long a change must go without further changes before the files are reloaded.
	// Editors often write a file in several steps, and every reload sends the events again.
	settleInterval = 100 * time.Millisecond
)

type fileWatcher struct {
	watcher     *fsnotify.Watcher
	loggers     ldlog.Loggers
	reload      func()
	paths       []string
	targets     map[string]bool
	watchedDirs map[string]bool
}

// WatchFiles sets up a mechanism for a file source to reload its files whenever one of them has been
// created, modified, renamed or removed. It calls reload once as soon as the watches are in place. Use it
// as follows:
//
//	source, err := inngestfiledata.Source().
//	    FilePaths("./events/signup.json").
//	    Reloader(inngestfilewatch.WatchFiles).
//	    Build(loggers, handler)
//
// The directories containing the files are watched rather than the files themselves, so a file that
// does not exist yet is picked up when it is created, and a file replaced by an atomic rename is not
// lost. Changes that only affect permissions are ignored.
func WatchFiles(paths []string, loggers ldlog.Loggers, reload func(), closeCh <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	fw := &fileWatcher{
		watcher:     watcher,
		loggers:     loggers,
		reload:      reload,
		paths:       paths,
		targets:     make(map[string]bool),
		watchedDirs: make(map[string]bool),
	}
	go fw.run(closeCh)
	return nil
}

func (fw *fileWatcher) run(closeCh <-chan struct{}) {
	defer func() {
		if err := fw.watcher.Close(); err != nil {
			fw.loggers.Errorf("Error closing file watcher: %s", err)
		}
	}()
	for {
		var retryCh <-chan time.Time
		if err := fw.addWatches(); err != nil {
			fw.loggers.Warnf("Unable to watch event files, will retry: %s", err)
			retryCh = time.After(retryInterval)
		}

		// The watches are in place before this reload, so a change made while it runs is still seen.
		fw.reload()

		if !fw.awaitChange(closeCh, retryCh) {
			return
		}
	}
}

// addWatches watches the directory of each path that is not already watched. Directories already watched
// are skipped, so it is safe to call repeatedly.
func (fw *fileWatcher) addWatches() error {
	for _, p := range fw.paths {
		dir := filepath.Dir(p)
		realDir, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return fmt.Errorf(`unable to evaluate symlinks for "%s": %w`, dir, err)
		}
		fw.targets[filepath.Join(realDir, filepath.Base(p))] = true
		if fw.watchedDirs[realDir] {
			continue
		}
		if err := fw.watcher.Add(realDir); err != nil {
			return fmt.Errorf(`unable to watch directory "%s": %w`, realDir, err)
		}
		fw.watchedDirs[realDir] = true
	}
	return nil
}

// awaitChange blocks until the files should be reloaded, returning true, or until the watcher should stop,
// returning false.
func (fw *fileWatcher) awaitChange(closeCh <-chan struct{}, retryCh <-chan time.Time) bool {
	var settleCh <-chan time.Time
	for {
		select {
		case <-closeCh:
			return false
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return false
			}
			if fw.watchedDirs[event.Name] && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				fw.loggers.Warnf("Directory %s is no longer present", event.Name)
				delete(fw.watchedDirs, event.Name)
				return true
			}
			if !fw.targets[event.Name] || event.Op == fsnotify.Chmod {
				continue
			}
			fw.loggers.Debugf("Detected change to %s (%s)", event.Name, event.Op)
			settleCh = time.After(settleInterval)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return false
			}
			fw.loggers.Errorf("File watcher error: %s", err)
		case <-settleCh:
			return true
		case <-retryCh:
			return true
		}
	}
}
