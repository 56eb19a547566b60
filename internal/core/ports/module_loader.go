package ports

// Module is the exported surface of a loaded macro package.
type Module interface {
	// Lookup returns the named export and whether it exists. The manifest
	// accessor export (domain.ManifestExport) has type
	// func() (*domain.Manifest, error).
	Lookup(export string) (any, bool)
}

// ModuleLoader loads an external macro package by specifier. It is a
// caller-injected capability so hosts (editor tooling, build bundlers) can
// supply their own module table; a filesystem-backed default lives in the
// manifest adapter.
//
//go:generate mockgen -source=module_loader.go -destination=mocks/mock_module_loader.go -package=mocks
type ModuleLoader interface {
	// Load returns the exported surface of the package identified by the
	// given specifier.
	Load(specifier string) (Module, error)
}

// ModuleResolver is an optional loader capability that maps a specifier to
// the absolute location of the package's entry document.
type ModuleResolver interface {
	// Resolve returns the absolute path of the package entry for the given
	// specifier.
	Resolve(specifier string) (string, error)
}

// ScopedLoader is an optional loader capability that derives a loader whose
// relative lookups resolve against the given directory. Packages carrying
// sub-resources addressed by relative path must be loaded through a loader
// scoped to their own directory.
type ScopedLoader interface {
	// Scoped returns a loader rooted at dir.
	Scoped(dir string) ModuleLoader
}
