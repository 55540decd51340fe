// Package config loads the settings of the rsexport command.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
	KeyStrict   = "strict"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults.
const (
	DefaultFormat   = FormatText
	DefaultLogLevel = "warn"

	// EnvPrefix prefixes environment overrides, as in RSEXPORT_LOG_LEVEL.
	EnvPrefix = "RSEXPORT"

	configName = ".rsexport"
	configType = "yaml"
)

// Config validation errors.
var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

var knownLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the command settings.
type Config struct {
	Format   string `json:"format" yaml:"format"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Strict makes any reported diagnostic fail the command.
	Strict bool `json:"strict" yaml:"strict"`
}

// Default returns the default settings.
func Default() Config {
	return Config{Format: DefaultFormat, LogLevel: DefaultLogLevel}
}

// Validate checks that the Config is well-formed. It returns an error
// wrapping one of the sentinel errors of this package.
func (c Config) Validate() error {
	if !knownFormats[c.Format] {
		return fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, c.Format)
	}
	if !knownLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// New returns a viper instance with defaults and environment overrides.
// An empty path searches for .rsexport.yaml in the working directory
// and then in $HOME; otherwise path names the config file.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyStrict, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	return v
}

// Load reads the config file, if any, and returns the validated settings.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Format:   v.GetString(KeyFormat),
		LogLevel: v.GetString(KeyLogLevel),
		Strict:   v.GetBool(KeyStrict),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
