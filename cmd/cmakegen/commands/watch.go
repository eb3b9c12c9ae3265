package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/cmakegen/internal/cmake"
	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/logfields"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
	"git.home.luguber.info/inful/cmakegen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Root     string        `short:"r" help:"Project root to scan (overrides config)"`
	Debounce time.Duration `help:"Delay before regenerating after a burst of changes" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if w.Root != "" {
		cfg.Scan.Root = w.Root
	}
	return RunWatch(cfg, w.Debounce)
}

// RunWatch generates the descriptor once, then keeps it in sync with the
// source tree until interrupted.
func RunWatch(cfg *config.Config, debounce time.Duration) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initial pass so the descriptor reflects the tree as it stands.
	if err := RunGenerate(cfg); err != nil {
		return err
	}

	scanner := scan.NewScanner(cfg.Scan)
	generator := cmake.NewGenerator(cfg, scanner.Root())

	regenerate := func(runID string) {
		sources, err := scanner.Scan()
		if err != nil {
			slog.Error("Scan failed", logfields.RunID(runID), logfields.Error(err))
			return
		}
		if len(sources) == 0 {
			slog.Warn("No source files found, descriptor left untouched", logfields.RunID(runID))
			return
		}
		if err := generator.Generate(sources); err != nil {
			slog.Error("Failed to write build descriptor", logfields.RunID(runID), logfields.Error(err))
			return
		}
		slog.Info("Build descriptor regenerated",
			logfields.RunID(runID),
			logfields.Count(len(sources)))
	}

	watcher, err := watch.New(scanner, generator.OutputPath(), debounce, regenerate)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	slog.Info("Watching for source changes, press Ctrl+C to stop")
	<-ctx.Done()

	if err := watcher.Stop(); err != nil {
		slog.Warn("Failed to stop watcher cleanly", logfields.Error(err))
	}
	return nil
}
