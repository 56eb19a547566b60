// Package app implements the application layer for macroscope.
package app

import (
	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"go.trai.ch/macroscope/internal/parser"
)

// App bundles the support-layer operations a macro-expansion host needs:
// configuration lookup, macro import parsing and external manifest
// resolution.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestSource
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	manifests ports.ManifestSource,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		manifests:    manifests,
		logger:       logger,
		tracer:       tracer,
	}
}

// LoadConfig returns the configuration for the project containing startDir.
func (a *App) LoadConfig(startDir string) domain.Config {
	span := a.tracer.Start("config.load")
	defer span.End()
	span.SetAttr("start_dir", startDir)

	return a.configLoader.Load(startDir)
}

// Imports returns the macro import table declared in code.
func (a *App) Imports(code string) domain.ImportTable {
	return parser.Parse(code)
}

// Manifest returns the manifest exported by the given module path.
func (a *App) Manifest(modulePath string) (*domain.Manifest, bool) {
	return a.manifests.Get(modulePath)
}

// MacroInfo resolves a macro by name from an external package.
func (a *App) MacroInfo(name, modulePath string) (*domain.MacroEntry, bool) {
	return a.manifests.MacroInfo(name, modulePath)
}

// DecoratorInfo resolves a decorator by export name from an external package.
func (a *App) DecoratorInfo(name, modulePath string) (*domain.DecoratorEntry, bool) {
	return a.manifests.DecoratorInfo(name, modulePath)
}

// CollectDecoratorModules returns the decorator module names contributed by
// every external package code references, in document order of the packages'
// first reference. Packages without a manifest contribute nothing; duplicate
// module names across packages are kept.
func (a *App) CollectDecoratorModules(code string) []string {
	span := a.tracer.Start("decorators.collect")
	defer span.End()

	var modules []string
	for _, modulePath := range parser.ModulePaths(code) {
		m, ok := a.manifests.Get(modulePath)
		if !ok {
			continue
		}
		for _, d := range m.Decorators {
			modules = append(modules, d.Module)
		}
	}
	return modules
}

// ClearManifests discards every cached manifest, permitting fresh load
// attempts after external packages change.
func (a *App) ClearManifests() {
	a.manifests.Clear()
}

// Components bundles the resolved application object graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
