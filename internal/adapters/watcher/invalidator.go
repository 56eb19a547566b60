package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invalidator discards cached manifests when their package directory changes
// on disk. It is opt-in: hosts that never run one keep the cache's
// load-once semantics. Content fingerprints (xxhash) suppress invalidations
// for writes that leave the manifest byte-identical, such as touch or
// re-install of the same version.
type Invalidator struct {
	manifests ports.ManifestSource
	watcher   ports.Watcher
	logger    ports.Logger

	mu           sync.Mutex
	fingerprints map[string]uint64 // manifest path -> content hash
	modules      map[string]string // manifest path -> module specifier
}

// NewInvalidator creates an Invalidator delivering invalidations to the
// given manifest source.
func NewInvalidator(manifests ports.ManifestSource, w ports.Watcher, logger ports.Logger) *Invalidator {
	return &Invalidator{
		manifests:    manifests,
		watcher:      w,
		logger:       logger,
		fingerprints: make(map[string]uint64),
		modules:      make(map[string]string),
	}
}

// Track watches the package directory backing the given module path. dir is
// the resolved package directory, typically from the loader's Resolve.
func (i *Invalidator) Track(modulePath, dir string) error {
	manifestPath := filepath.Join(dir, domain.ManifestFileName)

	i.mu.Lock()
	i.modules[manifestPath] = modulePath
	i.fingerprints[manifestPath] = fingerprint(manifestPath)
	i.mu.Unlock()

	if err := i.watcher.Add(dir); err != nil {
		return zerr.With(err, "module_path", modulePath)
	}
	return nil
}

// Run starts the underlying watcher and handles its events until ctx is
// cancelled.
func (i *Invalidator) Run(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- i.watcher.Start(ctx)
	}()

	for ev := range i.watcher.Events() {
		i.Handle(ev)
	}
	return <-done
}

// Handle processes a single watch event, invalidating the cached manifest
// when the tracked manifest document actually changed.
func (i *Invalidator) Handle(ev ports.WatchEvent) {
	i.mu.Lock()
	modulePath, tracked := i.modules[ev.Path]
	if !tracked {
		i.mu.Unlock()
		return
	}

	fp := fingerprint(ev.Path)
	if fp == i.fingerprints[ev.Path] {
		i.mu.Unlock()
		return
	}
	i.fingerprints[ev.Path] = fp
	i.mu.Unlock()

	i.manifests.Invalidate(modulePath)
	if i.logger != nil {
		i.logger.Info("manifest changed on disk, cache entry dropped: " + modulePath)
	}
}

// fingerprint hashes the manifest content; 0 stands for unreadable, so a
// removed manifest also counts as a change.
func fingerprint(path string) uint64 {
	data, err := os.ReadFile(path) //nolint:gosec // path derives from a tracked package directory
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
