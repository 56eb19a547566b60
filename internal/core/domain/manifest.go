package domain

import "strings"

// ManifestExport is the well-known export name every external macro package
// must expose. Its value has type func() (*Manifest, error) and returns the
// package's manifest.
const ManifestExport = "getMacroManifest"

// Manifest is the metadata document exported by an external macro package.
// It is owned by the package; macroscope only reads and caches it.
type Manifest struct {
	Macros     []MacroEntry
	Decorators []DecoratorEntry
}

// MacroEntry describes a single macro exported by a package.
type MacroEntry struct {
	Name        string
	Description string
}

// DecoratorEntry describes a single decorator exported by a package.
type DecoratorEntry struct {
	Export      string
	Module      string
	Description string
}

// Macro returns the first macro whose name matches case-insensitively,
// in manifest order.
func (m *Manifest) Macro(name string) (*MacroEntry, bool) {
	for i := range m.Macros {
		if strings.EqualFold(m.Macros[i].Name, name) {
			return &m.Macros[i], true
		}
	}
	return nil, false
}

// Decorator returns the first decorator whose export name matches
// case-insensitively, in manifest order.
func (m *Manifest) Decorator(export string) (*DecoratorEntry, bool) {
	for i := range m.Decorators {
		if strings.EqualFold(m.Decorators[i].Export, export) {
			return &m.Decorators[i], true
		}
	}
	return nil, false
}
