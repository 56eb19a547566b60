// Package manifest loads and caches manifests exported by external macro
// packages.
package manifest

import (
	"path/filepath"
	"sync"

	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes manifest lookups keyed by the exact module path string; no
// normalization is performed. Negative results are cached too, so a known-bad
// path is attempted at most once until the cache is cleared. Entries live for
// the process lifetime: there is no TTL and no size bound, Clear and
// Invalidate are the only removal paths.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*domain.Manifest // nil value marks a known-absent path
	group   singleflight.Group
	loader  ports.ModuleLoader
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a Cache that loads through the given loader.
func New(loader ports.ModuleLoader, logger ports.Logger, tracer ports.Tracer) *Cache {
	return &Cache{
		entries: make(map[string]*domain.Manifest),
		loader:  loader,
		logger:  logger,
		tracer:  tracer,
	}
}

// Get returns the manifest for the given module path, loading it on first
// use. Absence (unresolvable module, missing accessor, failed load) is a
// steady-state outcome, not an error, and is cached like a hit.
func (c *Cache) Get(modulePath string) (*domain.Manifest, bool) {
	return c.get(modulePath, c.loader)
}

// MacroInfo returns the first macro in the module's manifest whose name
// matches case-insensitively, in manifest order.
func (c *Cache) MacroInfo(name, modulePath string) (*domain.MacroEntry, bool) {
	m, ok := c.Get(modulePath)
	if !ok {
		return nil, false
	}
	return m.Macro(name)
}

// DecoratorInfo returns the first decorator in the module's manifest whose
// export name matches case-insensitively, in manifest order.
func (c *Cache) DecoratorInfo(name, modulePath string) (*domain.DecoratorEntry, bool) {
	m, ok := c.Get(modulePath)
	if !ok {
		return nil, false
	}
	return m.Decorator(name)
}

// Clear discards all entries, permitting fresh load attempts. Intended for
// test isolation and explicit invalidation after package updates.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.Manifest)
}

// Invalidate discards the entry for a single module path, if any.
func (c *Cache) Invalidate(modulePath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, modulePath)
}

// Len returns the number of cached entries, including negative ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Using returns a view of this cache that loads through the given loader.
// Entries are shared with the underlying cache.
func (c *Cache) Using(loader ports.ModuleLoader) *View {
	return &View{cache: c, loader: loader}
}

// View is a Cache bound to an alternative module loader.
type View struct {
	cache  *Cache
	loader ports.ModuleLoader
}

// Get behaves like Cache.Get using the view's loader.
func (v *View) Get(modulePath string) (*domain.Manifest, bool) {
	return v.cache.get(modulePath, v.loader)
}

// MacroInfo behaves like Cache.MacroInfo using the view's loader.
func (v *View) MacroInfo(name, modulePath string) (*domain.MacroEntry, bool) {
	m, ok := v.Get(modulePath)
	if !ok {
		return nil, false
	}
	return m.Macro(name)
}

// DecoratorInfo behaves like Cache.DecoratorInfo using the view's loader.
func (v *View) DecoratorInfo(name, modulePath string) (*domain.DecoratorEntry, bool) {
	m, ok := v.Get(modulePath)
	if !ok {
		return nil, false
	}
	return m.Decorator(name)
}

func (c *Cache) get(modulePath string, loader ports.ModuleLoader) (*domain.Manifest, bool) {
	c.mu.RLock()
	m, ok := c.entries[modulePath]
	c.mu.RUnlock()
	if ok {
		return m, m != nil
	}

	v, _, _ := c.group.Do(modulePath, func() (any, error) {
		// Another caller may have filled the entry between the read and the
		// flight.
		c.mu.RLock()
		m, ok := c.entries[modulePath]
		c.mu.RUnlock()
		if ok {
			return m, nil
		}

		m = c.load(modulePath, loader)

		c.mu.Lock()
		c.entries[modulePath] = m
		c.mu.Unlock()
		return m, nil
	})

	m, _ = v.(*domain.Manifest)
	return m, m != nil
}

// load performs a single load attempt. Every failure path collapses to nil:
// the caller caches it as the absent marker.
func (c *Cache) load(modulePath string, loader ports.ModuleLoader) *domain.Manifest {
	span := c.tracer.Start("manifest.load")
	defer span.End()
	span.SetAttr("module_path", modulePath)

	if loader == nil {
		return nil
	}

	mod, err := c.loadModule(modulePath, loader)
	if err != nil {
		span.RecordError(err)
		c.warn("manifest unavailable for "+modulePath, err)
		return nil
	}

	export, ok := mod.Lookup(domain.ManifestExport)
	if !ok {
		return nil
	}
	accessor, ok := export.(func() (*domain.Manifest, error))
	if !ok {
		return nil
	}

	m, err := accessor()
	if err != nil {
		span.RecordError(err)
		c.warn("manifest accessor failed for "+modulePath, err)
		return nil
	}
	return m
}

func (c *Cache) warn(msg string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg + ": " + err.Error())
}

// loadModule applies the resolution refinement: when the loader can resolve
// specifiers, the package is loaded through a loader scoped to its own
// directory, so that platform-specific sub-resources addressed by relative
// path resolve against the package rather than the caller. The scoped loader
// transiently replaces the process-ambient loader for the duration of the
// nested load and the previous one is restored on every exit path.
func (c *Cache) loadModule(modulePath string, loader ports.ModuleLoader) (ports.Module, error) {
	resolver, canResolve := loader.(ports.ModuleResolver)
	scoper, canScope := loader.(ports.ScopedLoader)
	if !canResolve || !canScope {
		return loader.Load(modulePath)
	}

	location, err := resolver.Resolve(modulePath)
	if err != nil {
		return nil, err
	}

	scoped := scoper.Scoped(filepath.Dir(location))
	restore := swapAmbient(scoped)
	defer restore()

	return scoped.Load(modulePath)
}
