package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader loads macro packages from the local filesystem. Bare specifiers
// are resolved by walking upward from Base through macro_modules directories;
// absolute and dot-relative specifiers resolve directly. It implements
// ports.ModuleLoader, ports.ModuleResolver and ports.ScopedLoader.
type FileLoader struct {
	Base string
}

// NewFileLoader creates a FileLoader rooted at base; an empty base means the
// current working directory.
func NewFileLoader(base string) *FileLoader {
	if base == "" {
		base, _ = os.Getwd()
	}
	return &FileLoader{Base: base}
}

// Resolve maps a specifier to the absolute path of the package's manifest
// document, its entry point for macroscope's purposes.
func (l *FileLoader) Resolve(specifier string) (string, error) {
	dir, err := l.resolveDir(specifier)
	if err != nil {
		return "", err
	}

	entry := filepath.Join(dir, domain.ManifestFileName)
	if _, err := os.Stat(entry); err != nil {
		return "", zerr.With(domain.ErrManifestMissing, "specifier", specifier)
	}
	return entry, nil
}

// Scoped returns a loader rooted at dir, so the package's own sub-resources
// resolve against its directory.
func (l *FileLoader) Scoped(dir string) ports.ModuleLoader {
	return &FileLoader{Base: dir}
}

// Load returns the exported surface of the package the specifier resolves
// to. The only export is the manifest accessor, present when the package
// ships a manifest document.
func (l *FileLoader) Load(specifier string) (ports.Module, error) {
	dir, err := l.resolveDir(specifier)
	if err != nil {
		return nil, err
	}
	return &fileModule{dir: dir}, nil
}

func (l *FileLoader) resolveDir(specifier string) (string, error) {
	if filepath.IsAbs(specifier) {
		return dirIfExists(specifier, specifier)
	}

	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return dirIfExists(filepath.Join(l.Base, specifier), specifier)
	}

	dir := l.Base
	for {
		candidate := filepath.Join(dir, domain.ModulesDirName, specifier)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrModuleNotFound, "specifier", specifier)
		}
		dir = parent
	}
}

func dirIfExists(path, specifier string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", zerr.With(domain.ErrModuleNotFound, "specifier", specifier)
	}
	return path, nil
}

// fileModule is the exported surface of a macro package on disk.
type fileModule struct {
	dir string
}

// Lookup exposes the manifest accessor when the package ships a manifest
// document. The accessor parses lazily, so a package with a broken manifest
// still loads; the error surfaces on access.
func (m *fileModule) Lookup(export string) (any, bool) {
	if export != domain.ManifestExport {
		return nil, false
	}

	path := filepath.Join(m.dir, domain.ManifestFileName)
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}

	accessor := func() (*domain.Manifest, error) {
		return readManifest(path)
	}
	return accessor, true
}

// manifestDTO mirrors the on-disk manifest document.
type manifestDTO struct {
	Macros []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"macros"`
	Decorators []struct {
		Export      string `yaml:"export"`
		Module      string `yaml:"module"`
		Description string `yaml:"description"`
	} `yaml:"decorators"`
}

func readManifest(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path derives from a resolved package directory
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	m := &domain.Manifest{
		Macros:     make([]domain.MacroEntry, 0, len(dto.Macros)),
		Decorators: make([]domain.DecoratorEntry, 0, len(dto.Decorators)),
	}
	for _, entry := range dto.Macros {
		m.Macros = append(m.Macros, domain.MacroEntry{
			Name:        entry.Name,
			Description: entry.Description,
		})
	}
	for _, entry := range dto.Decorators {
		m.Decorators = append(m.Decorators, domain.DecoratorEntry{
			Export:      entry.Export,
			Module:      entry.Module,
			Description: entry.Description,
		})
	}
	return m, nil
}
