// Package watch regenerates the build descriptor whenever the source tree
// changes. It mirrors the collector's filtering rules so that events under
// excluded directories, hidden files, and the output file itself never
// trigger a rebuild.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"git.home.luguber.info/inful/cmakegen/internal/logfields"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// DefaultDebounce coalesces rapid editor write bursts into one regeneration.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the source tree and triggers regeneration on changes
type Watcher struct {
	scanner     *scan.Scanner
	outputPath  string
	onChange    func(runID string)
	watcher     *fsnotify.Watcher
	mu          sync.RWMutex
	stopChan    chan struct{}
	triggerChan chan struct{}
	debounce    time.Duration
}

// New creates a watcher over the scanner's root. onChange is invoked after
// each debounced burst of relevant events with a fresh run ID.
func New(scanner *scan.Scanner, outputPath string, debounce time.Duration, onChange func(runID string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path so output-file events are recognized regardless
	// of how event paths are reported.
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		scanner:     scanner,
		outputPath:  absOutput,
		onChange:    onChange,
		watcher:     fsWatcher,
		stopChan:    make(chan struct{}),
		triggerChan: make(chan struct{}, 1),
		debounce:    debounce,
	}, nil
}

// Start begins monitoring the source tree
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.addTree(w.scanner.Root()); err != nil {
		return fmt.Errorf("failed to watch source tree: %w", err)
	}

	slog.Info("Starting source tree watcher", logfields.Root(w.scanner.Root()))

	go w.watchLoop(ctx)
	go w.regenerateLoop(ctx)

	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	slog.Info("Stopping source tree watcher")
	close(w.stopChan)
	return w.watcher.Close()
}

// addTree registers the directory and every non-excluded subdirectory.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.scanner.Excluded(d.Name()) && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// watchLoop consumes file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// New directories must be registered on the fly or changes
			// below them would go unnoticed.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.scanner.Excluded(filepath.Base(event.Name)) {
						if err := w.addTree(event.Name); err != nil {
							slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
						}
					}
					continue
				}
			}

			if w.ShouldTrigger(event.Name) {
				slog.Debug("Source change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

// ShouldTrigger reports whether an event on the given path warrants a
// regeneration. The rules match the collector's: recognized suffix,
// non-hidden base name, and never the output file.
func (w *Watcher) ShouldTrigger(path string) bool {
	if abs, err := filepath.Abs(path); err == nil && abs == w.outputPath {
		return false
	}
	return w.scanner.Matches(filepath.Base(path))
}

// trigger requests a regeneration without blocking the event loop.
func (w *Watcher) trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
	}
}

// regenerateLoop debounces triggers and invokes the regeneration callback
func (w *Watcher) regenerateLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.triggerChan:
			timer := time.NewTimer(w.debounce)
		debounce:
			for {
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case <-w.stopChan:
					timer.Stop()
					return
				case <-w.triggerChan:
					timer.Reset(w.debounce)
				case <-timer.C:
					break debounce
				}
			}

			runID := uuid.NewString()
			slog.Info("Source tree changed, regenerating", logfields.RunID(runID))
			w.onChange(runID)
		}
	}
}
