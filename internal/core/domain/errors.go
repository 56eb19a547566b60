package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when a module specifier cannot be
	// resolved to a package directory.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrManifestMissing is returned when a resolved package does not ship a
	// manifest document.
	ErrManifestMissing = zerr.New("package has no manifest")

	// ErrManifestReadFailed is returned when the manifest document cannot be
	// read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest document cannot be
	// parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrConfigReadFailed is returned when the discovered config file cannot
	// be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the injected config parser
	// rejects the config file content.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatcherClosed is returned when an operation is attempted on a
	// stopped watcher.
	ErrWatcherClosed = zerr.New("watcher is closed")

	// ErrNoSourceFile is returned by the CLI when a source file argument
	// cannot be read.
	ErrNoSourceFile = zerr.New("failed to read source file")

	// ErrManifestUnavailable is returned by the CLI when a module yields no
	// manifest.
	ErrManifestUnavailable = zerr.New("no manifest available for module")
)
