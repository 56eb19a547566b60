package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/macroscope/internal/adapters/config"
	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoader_Load_NoConfigFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	createFile(t, dir, domain.BoundaryFileName, "{}")

	loader := config.NewLoader(mockLogger)
	cfg := loader.Load(dir)

	assert.False(t, cfg.KeepDecorators)
	assert.Empty(t, cfg.ConfigPath)
	assert.Nil(t, cfg.GenerateConvenienceConst)
	assert.Nil(t, cfg.HasForeignTypes)
	assert.Empty(t, cfg.ReturnTypes)
}

func TestLoader_Load_FoundWithoutParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	want := createFile(t, dir, "macros.config.ts", "export default { keepDecorators: true }")

	loader := config.NewLoader(mockLogger)
	cfg := loader.Load(dir)

	// Content is never parsed without an injected parser.
	assert.Equal(t, want, cfg.ConfigPath)
	assert.False(t, cfg.KeepDecorators)
	assert.Nil(t, cfg.GenerateConvenienceConst)
}

func TestLoader_Load_WithParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	want := createFile(t, dir, "macros.config.ts", "whatever the host format is")

	yes := true
	no := false
	var gotContent []byte
	var gotPath string
	parser := func(content []byte, path string) (*domain.ConfigValues, error) {
		gotContent = content
		gotPath = path
		return &domain.ConfigValues{
			KeepDecorators:           true,
			GenerateConvenienceConst: &yes,
			HasForeignTypes:          &no,
			ForeignTypeCount:         0,
			ReturnTypes:              domain.ReturnTypesVanilla,
		}, nil
	}

	loader := config.NewLoaderWithParser(mockLogger, parser)
	cfg := loader.Load(dir)

	assert.Equal(t, []byte("whatever the host format is"), gotContent)
	assert.Equal(t, want, gotPath)

	assert.True(t, cfg.KeepDecorators)
	require.NotNil(t, cfg.GenerateConvenienceConst)
	assert.True(t, *cfg.GenerateConvenienceConst)
	require.NotNil(t, cfg.HasForeignTypes)
	assert.False(t, *cfg.HasForeignTypes)
	assert.Equal(t, domain.ReturnTypesVanilla, cfg.ReturnTypes)
	assert.Equal(t, want, cfg.ConfigPath)
}

func TestLoader_Load_ParserErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	want := createFile(t, dir, "macros.config.ts", "broken")

	parser := func(_ []byte, _ string) (*domain.ConfigValues, error) {
		return nil, errors.New("unsupported config version")
	}

	loader := config.NewLoaderWithParser(mockLogger, parser)
	cfg := loader.Load(dir)

	// A broken config degrades to defaults plus the discovered path.
	assert.Equal(t, want, cfg.ConfigPath)
	assert.False(t, cfg.KeepDecorators)
}

func TestLoader_Load_ReadErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	// A directory with a candidate name: Stat succeeds, ReadFile fails.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "macros.config.ts"), domain.DirPerm))

	parser := func(_ []byte, _ string) (*domain.ConfigValues, error) {
		t.Fatal("parser must not run when the file cannot be read")
		return nil, nil
	}

	loader := config.NewLoaderWithParser(mockLogger, parser)
	cfg := loader.Load(dir)

	assert.Equal(t, filepath.Join(dir, "macros.config.ts"), cfg.ConfigPath)
	assert.False(t, cfg.KeepDecorators)
}
