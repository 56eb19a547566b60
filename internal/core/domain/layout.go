package domain

const (
	// BoundaryFileName marks the root of a project; the config search never
	// crosses a directory that contains it.
	BoundaryFileName = "package.json"

	// ManifestFileName is the manifest document shipped inside an external
	// macro package directory.
	ManifestFileName = "macro-manifest.yaml"

	// ModulesDirName is the directory bare module specifiers are resolved
	// against, searched upward from the loader's base directory.
	ModulesDirName = "macro_modules"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// configFileNames lists the recognized configuration filenames in precedence
// order: the statically-typed source variant wins over the module-typed one,
// which wins over the script variants.
var configFileNames = []string{
	"macros.config.ts",
	"macros.config.mts",
	"macros.config.js",
	"macros.config.mjs",
	"macros.config.cjs",
}

// ConfigFileNames returns the recognized configuration filenames in
// precedence order. Callers must not mutate the returned slice.
func ConfigFileNames() []string {
	return configFileNames
}
