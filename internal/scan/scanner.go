package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/cmakegen/internal/config"
	serrors "git.home.luguber.info/inful/cmakegen/internal/scan/errors"
)

// SourceFile represents a discovered source file
type SourceFile struct {
	Path    string // Absolute path to the file
	RelPath string // Slash-separated path relative to the scan root
	Name    string // Base name of the file
}

// Scanner collects source files from a project tree
type Scanner struct {
	root        string
	extensions  []string
	excludeDirs map[string]struct{}
}

// NewScanner creates a scanner for the given scan configuration.
func NewScanner(cfg config.ScanConfig) *Scanner {
	exclude := make(map[string]struct{}, len(cfg.ExcludeDirs))
	for _, dir := range cfg.ExcludeDirs {
		exclude[dir] = struct{}{}
	}

	root := cfg.Root
	if root == "" {
		root = config.DefaultScanRoot
	}

	return &Scanner{
		root:        root,
		extensions:  cfg.Extensions,
		excludeDirs: exclude,
	}
}

// Root returns the directory the scanner walks.
func (s *Scanner) Root() string { return s.root }

// Scan walks the source tree and returns every recognized source file as a
// root-relative path, in traversal order. A file is collected when its name
// ends with a recognized suffix, no path segment equals an excluded directory
// name, and its base name does not start with the hidden marker.
func (s *Scanner) Scan() ([]SourceFile, error) {
	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", serrors.ErrRootNotFound, s.root)
	}

	var sources []SourceFile

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Excluded directories are pruned entirely; nothing below an
			// excluded segment can be collected.
			if _, excluded := s.excludeDirs[d.Name()]; excluded && path != s.root {
				slog.Debug("Skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !s.Matches(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}

		sources = append(sources, SourceFile{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Name:    d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", serrors.ErrWalkFailed, s.root, err)
	}

	slog.Debug("Source scan completed", "root", s.root, "files", len(sources))
	return sources, nil
}

// Matches reports whether a file with the given base name is a recognized,
// non-hidden source file. Only the base name is tested for the hidden marker;
// hidden directories are still descended into.
func (s *Scanner) Matches(name string) bool {
	if strings.HasPrefix(name, config.HiddenMarker) {
		return false
	}
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether the given directory name is pruned from the walk.
func (s *Scanner) Excluded(name string) bool {
	_, ok := s.excludeDirs[name]
	return ok
}
