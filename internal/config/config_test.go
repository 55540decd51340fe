package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"defaults are valid", Default(), nil},
		{"json output", Config{Format: FormatJSON, LogLevel: "debug"}, nil},
		{"yaml strict", Config{Format: FormatYAML, LogLevel: "error", Strict: true}, nil},
		{"unknown format", Config{Format: "xml", LogLevel: "warn"}, ErrInvalidFormat},
		{"empty format", Config{LogLevel: "warn"}, ErrInvalidFormat},
		{"unknown level", Config{Format: FormatText, LogLevel: "loud"}, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".rsexport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: json\nstrict: true\n")
	chdir(t, dir)

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, Config{Format: FormatJSON, LogLevel: DefaultLogLevel, Strict: true}, cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "log_level: debug\n")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: json\n")
	t.Setenv("RSEXPORT_FORMAT", "yaml")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "format: xml\n")

	_, err := Load(New(path))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
