package inngestfiledata

import (
	"errors"
	"sync"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/inngest/inngest-sdk-go/inngestevent"
)

// ReloaderFactory is a function type used with SourceBuilder.Reloader, to specify a mechanism for
// detecting when files should be reloaded. Its standard implementation is in the inngestfilewatch package.
//
// The factory must call reload once after it has started watching, and again after every change.
type ReloaderFactory func(paths []string, loggers ldlog.Loggers, reload func(), closeCh <-chan struct{}) error

// SourceBuilder is a builder for configuring a FileSource. Obtain an instance by calling Source().
//
// Builder calls can be chained:
//
//	inngestfiledata.Source().FilePaths("file1").FilePaths("file2")
type SourceBuilder struct {
	filePaths       []string
	reloaderFactory ReloaderFactory
}

// Source returns a configurable builder for a FileSource.
func Source() *SourceBuilder {
	return &SourceBuilder{}
}

// FilePaths specifies the input files. The paths may be any number of absolute or relative file paths.
func (b *SourceBuilder) FilePaths(paths ...string) *SourceBuilder {
	b.filePaths = append(b.filePaths, paths...)
	return b
}

// Reloader specifies a mechanism for reloading files. It is normally used with the inngestfilewatch
// package:
//
//	inngestfiledata.Source().FilePaths(paths...).Reloader(inngestfilewatch.WatchFiles)
func (b *SourceBuilder) Reloader(reloaderFactory ReloaderFactory) *SourceBuilder {
	b.reloaderFactory = reloaderFactory
	return b
}

// Build creates the FileSource. The handler is called with the events from all files each time they are
// successfully loaded.
func (b *SourceBuilder) Build(loggers ldlog.Loggers, handler func([]inngestevent.Payload)) (*FileSource, error) {
	if len(b.filePaths) == 0 {
		return nil, errors.New("no file paths were specified")
	}
	abs, err := absFilePaths(b.filePaths)
	if err != nil {
		return nil, err
	}
	loggers.SetPrefix("FileSource:")
	return &FileSource{
		absFilePaths:    abs,
		reloaderFactory: b.reloaderFactory,
		loggers:         loggers,
		handler:         handler,
	}, nil
}

// FileSource loads events from files and passes them to a handler.
type FileSource struct {
	absFilePaths    []string
	reloaderFactory ReloaderFactory
	loggers         ldlog.Loggers
	handler         func([]inngestevent.Payload)
	closeOnce       sync.Once
	closeReloaderCh chan struct{}
}

// Start loads the files. If there is no reloader, this happens once, synchronously, and the result of
// that load is returned. Otherwise the reloader performs the first load and every later one, and Start
// only reports whether the reloader could be started.
func (fs *FileSource) Start() error {
	if fs.reloaderFactory == nil {
		return fs.load()
	}
	fs.closeReloaderCh = make(chan struct{})
	if err := fs.reloaderFactory(fs.absFilePaths, fs.loggers, fs.Reload, fs.closeReloaderCh); err != nil {
		fs.loggers.Errorf("Unable to start reloader: %s", err)
		return err
	}
	return nil
}

// Reload immediately rereads all of the files. If any file cannot be loaded or parsed, the error is
// logged and the handler is not called.
func (fs *FileSource) Reload() {
	_ = fs.load()
}

func (fs *FileSource) load() error {
	payloads, err := ReadFiles(fs.absFilePaths)
	if err != nil {
		fs.loggers.Errorf("Unable to load events: %s", err)
		return err
	}
	fs.loggers.Debugf("Loaded %d event(s) from %d file(s)", len(payloads), len(fs.absFilePaths))
	fs.handler(payloads)
	return nil
}

// Close stops the reloader, if any.
func (fs *FileSource) Close() error {
	fs.closeOnce.Do(func() {
		if fs.closeReloaderCh != nil {
			close(fs.closeReloaderCh)
		}
	})
	return nil
}
