package config

import (
	"os"

	"go.trai.ch/macroscope/internal/core/domain"
	"go.trai.ch/macroscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader. It discovers the configuration file
// via a Locator and delegates content parsing to an injected parser; when no
// parser is injected the file content is never read.
type Loader struct {
	locator Locator
	parser  ports.ConfigParser
	logger  ports.Logger
}

// NewLoader creates a Loader without a content parser: discovered files
// contribute only their path.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// NewLoaderWithParser creates a Loader that parses discovered files with the
// given parser.
func NewLoaderWithParser(logger ports.Logger, parser ports.ConfigParser) *Loader {
	return &Loader{logger: logger, parser: parser}
}

// Load returns the configuration for the project containing startDir. It
// never fails: a missing config file yields defaults, a found file without a
// parser yields defaults plus the path, and a read or parse error degrades to
// defaults plus the path with a warning. A broken config file must not abort
// the host build.
func (l *Loader) Load(startDir string) domain.Config {
	cfg := domain.DefaultConfig()

	path, found := l.locator.Find(startDir)
	if !found {
		return cfg
	}
	cfg.ConfigPath = path

	if l.parser == nil {
		return cfg
	}

	content, err := os.ReadFile(path) //nolint:gosec // path was discovered under the caller's project
	if err != nil {
		l.warn(zerr.Wrap(err, "failed to read config file"), path)
		return cfg
	}

	values, err := l.parser(content, path)
	if err != nil {
		l.warn(zerr.Wrap(err, "failed to parse config file"), path)
		return cfg
	}
	if values == nil {
		l.warn(domain.ErrConfigParseFailed, path)
		return cfg
	}

	cfg.KeepDecorators = values.KeepDecorators
	cfg.GenerateConvenienceConst = values.GenerateConvenienceConst
	cfg.HasForeignTypes = values.HasForeignTypes
	cfg.ForeignTypeCount = values.ForeignTypeCount
	cfg.ReturnTypes = values.ReturnTypes
	return cfg
}

func (l *Loader) warn(err error, path string) {
	if l.logger == nil {
		return
	}
	l.logger.Warn("falling back to default configuration: " + zerr.With(err, "config_path", path).Error())
}
