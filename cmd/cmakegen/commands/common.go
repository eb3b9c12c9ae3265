package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"cmakegen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Scan for source files and regenerate the build descriptor"`
	Discover DiscoverCmd `cmd:"" help:"List discovered source files without writing anything"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the build descriptor whenever the source tree changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// newScanner builds the collector for a config, honoring a --root override.
func newScanner(cfg *config.Config, rootOverride string) *scan.Scanner {
	if rootOverride != "" {
		cfg.Scan.Root = rootOverride
	}
	return scan.NewScanner(cfg.Scan)
}
