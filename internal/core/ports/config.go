package ports

import "go.trai.ch/macroscope/internal/core/domain"

// ConfigParser parses raw configuration file content into config values.
// macroscope itself parses no configuration format; hosts inject a parser
// matching the file variants they support. Returned values are trusted as
// already validated.
type ConfigParser func(content []byte, path string) (*domain.ConfigValues, error)

// ConfigLoader loads the session configuration starting from a directory.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	// Load returns the configuration for the project containing startDir.
	// It always returns a usable configuration; a missing or broken config
	// file degrades to defaults rather than failing the session.
	Load(startDir string) domain.Config
}
