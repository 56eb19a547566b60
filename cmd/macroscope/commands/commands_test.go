package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/macroscope/cmd/macroscope/commands"
	"go.trai.ch/macroscope/internal/build"
	"go.trai.ch/macroscope/internal/core/domain"
)

type mockApp struct {
	loadConfigFunc func(startDir string) domain.Config
	importsFunc    func(code string) domain.ImportTable
	collectFunc    func(code string) []string
	manifestFunc   func(modulePath string) (*domain.Manifest, bool)
}

func (m *mockApp) LoadConfig(startDir string) domain.Config {
	if m.loadConfigFunc != nil {
		return m.loadConfigFunc(startDir)
	}
	return domain.DefaultConfig()
}

func (m *mockApp) Imports(code string) domain.ImportTable {
	if m.importsFunc != nil {
		return m.importsFunc(code)
	}
	return nil
}

func (m *mockApp) CollectDecoratorModules(code string) []string {
	if m.collectFunc != nil {
		return m.collectFunc(code)
	}
	return nil
}

func (m *mockApp) Manifest(modulePath string) (*domain.Manifest, bool) {
	if m.manifestFunc != nil {
		return m.manifestFunc(modulePath)
	}
	return nil, false
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommands_Config(t *testing.T) {
	t.Run("prints resolved values", func(t *testing.T) {
		keep := true
		var capturedDir string
		mock := &mockApp{
			loadConfigFunc: func(startDir string) domain.Config {
				capturedDir = startDir
				return domain.Config{
					KeepDecorators:           true,
					GenerateConvenienceConst: &keep,
					ForeignTypeCount:         3,
					ReturnTypes:              domain.ReturnTypesEffect,
					ConfigPath:               "/proj/macros.config.ts",
				}
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"config", "/proj/src"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/proj/src", capturedDir)
		assert.Contains(t, buf.String(), "source: /proj/macros.config.ts")
		assert.Contains(t, buf.String(), "keep-decorators: true")
		assert.Contains(t, buf.String(), "generate-convenience-const: true")
		assert.Contains(t, buf.String(), "has-foreign-types: unset")
		assert.Contains(t, buf.String(), "foreign-type-count: 3")
		assert.Contains(t, buf.String(), "return-types: effect")
	})

	t.Run("defaults directory to cwd", func(t *testing.T) {
		var capturedDir string
		mock := &mockApp{
			loadConfigFunc: func(startDir string) domain.Config {
				capturedDir = startDir
				return domain.DefaultConfig()
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"config"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".", capturedDir)
		assert.Contains(t, buf.String(), "source: (defaults)")
		assert.Contains(t, buf.String(), "return-types: unset")
	})
}

func TestCommands_Imports(t *testing.T) {
	t.Run("prints sorted import table", func(t *testing.T) {
		path := writeSource(t, `/** import macro {B, A} from "pkg" */`)
		mock := &mockApp{
			importsFunc: func(_ string) domain.ImportTable {
				return domain.ImportTable{"B": "pkg", "A": "pkg"}
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"imports", path})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A pkg\nB pkg\n", buf.String())
	})

	t.Run("reports empty table", func(t *testing.T) {
		path := writeSource(t, "const x = 1\n")
		mock := &mockApp{}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"imports", path})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "no macro imports")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		mock := &mockApp{}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"imports", filepath.Join(t.TempDir(), "missing.ts")})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.ts")
	})
}

func TestCommands_Decorators(t *testing.T) {
	t.Run("prints modules in order", func(t *testing.T) {
		path := writeSource(t, `/** import macro {Logged} from "pkg-a" */`)
		mock := &mockApp{
			collectFunc: func(_ string) []string {
				return []string{"tracing-helpers", "logging-helpers", "logging-helpers"}
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"decorators", path})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tracing-helpers\nlogging-helpers\nlogging-helpers\n", buf.String())
	})

	t.Run("reports empty result", func(t *testing.T) {
		path := writeSource(t, "const x = 1\n")
		mock := &mockApp{}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"decorators", path})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "no decorator modules")
	})
}

func TestCommands_Manifest_Unavailable(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"manifest", "missing-pkg"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestUnavailable)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
