package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/logfields"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Root string `short:"r" help:"Project root to scan (overrides config)"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return RunDiscover(cfg, d.Root)
}

// RunDiscover collects source files and lists them without writing anything.
func RunDiscover(cfg *config.Config, rootOverride string) error {
	scanner := newScanner(cfg, rootOverride)

	slog.Info("Starting source discovery", logfields.Root(scanner.Root()))

	sources, err := scanner.Scan()
	if err != nil {
		return err
	}

	slog.Info("Discovery completed", logfields.Count(len(sources)))

	if len(sources) == 0 {
		fmt.Println("no source files found")
		return nil
	}
	for _, src := range sources {
		fmt.Println(src.RelPath)
	}
	return nil
}
