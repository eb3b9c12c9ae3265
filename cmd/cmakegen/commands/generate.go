package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/cmakegen/internal/cmake"
	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/logfields"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
	"github.com/google/uuid"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Root   string `short:"r" help:"Project root to scan (overrides config)"`
	Output string `short:"o" help:"Output file name (overrides config)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if g.Root != "" {
		cfg.Scan.Root = g.Root
	}
	if g.Output != "" {
		cfg.Output.File = g.Output
	}
	return RunGenerate(cfg)
}

// RunGenerate performs one scan-and-emit pass: collect the source files and,
// if any were found, write the build descriptor over any previous version.
// An empty tree is not an error; the descriptor is left untouched.
func RunGenerate(cfg *config.Config) error {
	runID := uuid.NewString()
	slog.Info("Starting descriptor generation",
		logfields.RunID(runID),
		logfields.Project(cfg.Project.Name),
		logfields.Root(cfg.Scan.Root))

	scanner := scan.NewScanner(cfg.Scan)
	sources, err := scanner.Scan()
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		slog.Warn("No source files found, descriptor not written",
			logfields.RunID(runID),
			logfields.Root(cfg.Scan.Root))
		fmt.Printf("no %s files found\n", strings.Join(cfg.Scan.Extensions, "/"))
		return nil
	}

	generator := cmake.NewGenerator(cfg, scanner.Root())
	if err := generator.Generate(sources); err != nil {
		return err
	}

	slog.Info("Build descriptor generated",
		logfields.RunID(runID),
		logfields.Path(generator.OutputPath()),
		logfields.Count(len(sources)))
	fmt.Printf("%s created, found %d source files.\n", cfg.Output.File, len(sources))
	return nil
}
