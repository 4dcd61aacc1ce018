package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/tms/pkg/core/logging"
)

// Watcher observes a single model file and invokes a callback whenever it is
// written or recreated. Events are debounced because editors typically fire
// several in quick succession for one save.
type Watcher struct {
	path     string
	logger   *logging.Logger
	onChange func()

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// New creates a watcher for the given file.
func New(path string, logger *logging.Logger, onChange func()) (*Watcher, error) {
	if logger == nil {
		logger = logging.New("watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	return &Watcher{
		path:     abs,
		logger:   logger,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and blocks until the context is cancelled or Stop is
// called. The parent directory is watched rather than the file itself so that
// editors replacing the file atomically are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	w.logger.Info("watching model file", "path", w.path)

	const debounceDelay = 500 * time.Millisecond
	var lastEvent time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping watcher (context cancelled)")
			return ctx.Err()

		case <-w.stopCh:
			w.logger.Info("stopping watcher (stop signal)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if time.Since(lastEvent) < debounceDelay {
				continue
			}
			lastEvent = time.Now()

			w.logger.Info("model file changed, reloading", "path", w.path, "op", event.Op.String())
			w.onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Stop terminates a running Start.
func (w *Watcher) Stop() {
	close(w.stopCh)
}
