package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/macroscope/internal/adapters/manifest"
	"go.trai.ch/macroscope/internal/core/domain"
)

const sampleManifestYAML = `macros:
  - name: JSON
    description: derive JSON codecs
decorators:
  - export: Traced
    module: tracing-helpers
    description: wrap calls in spans
`

// writePackage creates a macro package under root/macro_modules/<name>.
func writePackage(t *testing.T, root, name, manifestYAML string) string {
	t.Helper()
	dir := filepath.Join(root, domain.ModulesDirName, name)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	if manifestYAML != "" {
		path := filepath.Join(dir, domain.ManifestFileName)
		require.NoError(t, os.WriteFile(path, []byte(manifestYAML), domain.FilePerm))
	}
	return dir
}

func TestFileLoader_Resolve_BareSpecifier(t *testing.T) {
	root := t.TempDir()
	dir := writePackage(t, root, "@playground/macro", sampleManifestYAML)

	loader := manifest.NewFileLoader(root)
	entry, err := loader.Resolve("@playground/macro")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, domain.ManifestFileName), entry)
}

func TestFileLoader_Resolve_WalksUpward(t *testing.T) {
	root := t.TempDir()
	dir := writePackage(t, root, "pkg", sampleManifestYAML)

	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	loader := manifest.NewFileLoader(nested)
	entry, err := loader.Resolve("pkg")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, domain.ManifestFileName), entry)
}

func TestFileLoader_Resolve_UnknownSpecifier(t *testing.T) {
	loader := manifest.NewFileLoader(t.TempDir())

	_, err := loader.Resolve("no-such-package")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestFileLoader_Resolve_PackageWithoutManifest(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "bare", "")

	loader := manifest.NewFileLoader(root)
	_, err := loader.Resolve("bare")

	assert.ErrorIs(t, err, domain.ErrManifestMissing)
}

func TestFileLoader_Load_ManifestAccessor(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "pkg", sampleManifestYAML)

	loader := manifest.NewFileLoader(root)
	mod, err := loader.Load("pkg")
	require.NoError(t, err)

	export, ok := mod.Lookup(domain.ManifestExport)
	require.True(t, ok)
	accessor, ok := export.(func() (*domain.Manifest, error))
	require.True(t, ok)

	m, err := accessor()
	require.NoError(t, err)
	require.Len(t, m.Macros, 1)
	assert.Equal(t, "JSON", m.Macros[0].Name)
	require.Len(t, m.Decorators, 1)
	assert.Equal(t, "tracing-helpers", m.Decorators[0].Module)
}

func TestFileLoader_Load_NoManifestMeansNoAccessor(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "bare", "")

	loader := manifest.NewFileLoader(root)
	mod, err := loader.Load("bare")
	require.NoError(t, err)

	_, ok := mod.Lookup(domain.ManifestExport)
	assert.False(t, ok)
}

func TestFileLoader_Load_BrokenManifestErrorsOnAccess(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "pkg", "macros: [not, valid, mapping]")

	loader := manifest.NewFileLoader(root)
	mod, err := loader.Load("pkg")
	require.NoError(t, err)

	export, ok := mod.Lookup(domain.ManifestExport)
	require.True(t, ok)
	accessor := export.(func() (*domain.Manifest, error))

	_, err = accessor()
	assert.Error(t, err)
}

func TestFileLoader_Load_RelativeSpecifier(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "local-pkg")
	require.NoError(t, os.MkdirAll(pkg, domain.DirPerm))
	require.NoError(t, os.WriteFile(
		filepath.Join(pkg, domain.ManifestFileName), []byte(sampleManifestYAML), domain.FilePerm))

	loader := manifest.NewFileLoader(root)
	mod, err := loader.Load("./local-pkg")
	require.NoError(t, err)

	_, ok := mod.Lookup(domain.ManifestExport)
	assert.True(t, ok)
}

func TestFileLoader_Scoped(t *testing.T) {
	root := t.TempDir()
	inner := filepath.Join(root, "inner")
	writePackage(t, inner, "pkg", sampleManifestYAML)

	loader := manifest.NewFileLoader(t.TempDir())
	scoped := loader.Scoped(inner)

	_, err := scoped.Load("pkg")
	require.NoError(t, err)

	// The original loader's base is untouched.
	_, err = loader.Load("pkg")
	assert.Error(t, err)
}

func TestCache_Get_ThroughFileLoaderScopesAndRestoresAmbient(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "pkg", sampleManifestYAML)

	previous := manifest.NewFileLoader(t.TempDir())
	manifest.SetAmbient(previous)
	t.Cleanup(func() { manifest.SetAmbient(nil) })

	loader := manifest.NewFileLoader(root)
	cache := newCache(t, loader)

	m, ok := cache.Get("pkg")

	require.True(t, ok)
	assert.Len(t, m.Macros, 1)
	assert.Same(t, previous, manifest.Ambient(), "ambient loader restored after the nested load")
}

func TestCache_Get_AmbientRestoredOnFailedLoad(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "pkg", "macros: [broken")

	previous := manifest.NewFileLoader(t.TempDir())
	manifest.SetAmbient(previous)
	t.Cleanup(func() { manifest.SetAmbient(nil) })

	cache := newCache(t, manifest.NewFileLoader(root))

	_, ok := cache.Get("pkg")

	assert.False(t, ok)
	assert.Same(t, previous, manifest.Ambient())
}
