// Package cmake renders and writes the CMakeLists.txt build descriptor from
// a collected source list and the configured build settings. Generation is a
// destructive full regeneration: any prior descriptor is replaced wholesale.
package cmake

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"git.home.luguber.info/inful/cmakegen/internal/config"
	"git.home.luguber.info/inful/cmakegen/internal/scan"
)

var descriptorTemplate = template.Must(
	template.New("cmake").Option("missingkey=error").Parse(cmakeTemplate))

// Generator renders the build descriptor for one project
type Generator struct {
	config *config.Config
	root   string
}

// NewGenerator creates a generator writing into the given project root.
func NewGenerator(cfg *config.Config, root string) *Generator {
	return &Generator{config: cfg, root: root}
}

// OutputPath returns the full path of the generated descriptor.
func (g *Generator) OutputPath() string {
	return filepath.Join(g.root, g.config.Output.File)
}

// Render produces the descriptor document for the given sources. Rendering
// the same source list twice yields byte-identical output.
func (g *Generator) Render(sources []scan.SourceFile) (string, error) {
	rels := make([]string, 0, len(sources))
	for _, src := range sources {
		rels = append(rels, src.RelPath)
	}

	dep := g.config.Dependency.Name
	data := templateData{
		CMakeMinimum:   g.config.Project.CMakeMinimum,
		Project:        g.config.Project.Name,
		CxxStandard:    g.config.Project.CxxStandard,
		Dependency:     dep,
		DepIncludeDirs: fmt.Sprintf("${%s_INCLUDE_DIRS}", dep),
		DepLibraries:   fmt.Sprintf("${%s_LIBRARIES}", dep),
		Sources:        rels,
	}

	var buf bytes.Buffer
	if err := descriptorTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render build descriptor: %w", err)
	}
	return buf.String(), nil
}

// Generate renders the descriptor and writes it to the output path,
// unconditionally replacing any previous file.
func (g *Generator) Generate(sources []scan.SourceFile) error {
	content, err := g.Render(sources)
	if err != nil {
		return err
	}

	outPath := g.OutputPath()
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write build descriptor: %w", err)
	}

	slog.Debug("Build descriptor written", "path", outPath, "sources", len(sources))
	return nil
}
