package ports

import "go.trai.ch/macroscope/internal/core/domain"

// ManifestSource resolves manifests exported by external macro packages.
// Absence (unresolvable module, missing accessor, failed load) is a boolean
// result, never an error; these are steady-state outcomes.
//
//go:generate mockgen -source=manifest_source.go -destination=mocks/mock_manifest_source.go -package=mocks
type ManifestSource interface {
	// Get returns the manifest for the given module path.
	Get(modulePath string) (*domain.Manifest, bool)
	// MacroInfo returns the first macro matching name case-insensitively.
	MacroInfo(name, modulePath string) (*domain.MacroEntry, bool)
	// DecoratorInfo returns the first decorator whose export matches name
	// case-insensitively.
	DecoratorInfo(name, modulePath string) (*domain.DecoratorEntry, bool)
	// Clear discards every cached entry, permitting fresh load attempts.
	Clear()
	// Invalidate discards the entry for a single module path, if any.
	Invalidate(modulePath string)
}
