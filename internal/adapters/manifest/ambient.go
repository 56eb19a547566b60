package manifest

import (
	"sync"

	"go.trai.ch/macroscope/internal/core/ports"
)

// The ambient loader is the process-wide module loader visible to code that
// does not carry its own. Scoped nested loads substitute it transiently;
// swapMu makes the substitution a global critical section, so only one
// substitution is active at a time while Ambient stays readable from within
// the nested load.
var (
	swapMu    sync.Mutex // serializes substitutions
	ambientMu sync.Mutex // guards the variable itself
	ambient   ports.ModuleLoader
)

// Ambient returns the current process-wide module loader, which may be nil
// when no host installed one.
func Ambient() ports.ModuleLoader {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	return ambient
}

// SetAmbient installs the process-wide module loader.
func SetAmbient(l ports.ModuleLoader) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	ambient = l
}

// swapAmbient substitutes the ambient loader and returns a restore function.
// The substitution lock is held until restore runs, so the previous loader is
// guaranteed back in place on every exit path.
func swapAmbient(l ports.ModuleLoader) (restore func()) {
	swapMu.Lock()

	ambientMu.Lock()
	previous := ambient
	ambient = l
	ambientMu.Unlock()

	return func() {
		ambientMu.Lock()
		ambient = previous
		ambientMu.Unlock()

		swapMu.Unlock()
	}
}
