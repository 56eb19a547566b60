// Package config implements configuration discovery and loading for
// macroscope.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/macroscope/internal/core/domain"
)

// Locator finds the user configuration file by walking from a starting
// directory toward the filesystem root, using existence checks only.
type Locator struct{}

// Find returns the path of the first configuration file found at or above
// startDir, checking candidates in precedence order within each directory
// before moving to the parent. A directory containing the project boundary
// marker but no config file ends the search: configuration is never picked
// up from outside the project root.
func (l *Locator) Find(startDir string) (string, bool) {
	dir := startDir
	for {
		for _, name := range domain.ConfigFileNames() {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}

		if _, err := os.Stat(filepath.Join(dir, domain.BoundaryFileName)); err == nil {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return "", false
		}
		dir = parent
	}
}
