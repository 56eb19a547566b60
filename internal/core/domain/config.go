// Package domain contains core domain types for macroscope.
package domain

// ReturnTypes selects which flavor of return types generated helper code uses.
type ReturnTypes string

const (
	// ReturnTypesVanilla generates plain return types.
	ReturnTypesVanilla ReturnTypes = "vanilla"
	// ReturnTypesCustom generates caller-defined return types.
	ReturnTypesCustom ReturnTypes = "custom"
	// ReturnTypesEffect generates effect-wrapped return types.
	ReturnTypesEffect ReturnTypes = "effect"
)

// Config is the user configuration for a macroscope session. It is produced
// once per invocation by the config loader and never mutated afterwards.
//
// Pointer fields distinguish "explicitly set" from "unset"; an empty
// ReturnTypes means unset.
type Config struct {
	KeepDecorators           bool
	GenerateConvenienceConst *bool
	HasForeignTypes          *bool
	ForeignTypeCount         int
	ReturnTypes              ReturnTypes

	// ConfigPath is the discovered configuration file, empty when none was
	// found.
	ConfigPath string
}

// ConfigValues is the result shape produced by an injected config parser.
// Values are trusted as already validated by the parser.
type ConfigValues struct {
	KeepDecorators           bool
	GenerateConvenienceConst *bool
	HasForeignTypes          *bool
	ForeignTypeCount         int
	ReturnTypes              ReturnTypes
}

// DefaultConfig returns the configuration used when no config file is found:
// decorators are stripped and every optional field is unset.
func DefaultConfig() Config {
	return Config{}
}
