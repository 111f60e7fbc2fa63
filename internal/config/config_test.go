package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/document"
	"pnp-mapper/internal/config"
	"pnp-mapper/options"
	"pnp-mapper/schema"
)

var supported = []schema.Version{schema.V201605, schema.V201903}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
app = "convert-job"
log_level = "DEBUG"
source_version = "2019-03"
target_version = "201605"
output_format = "yaml"
discard_field_errors = true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate(supported))

	assert.Equal(t, "convert-job", cfg.App)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, schema.V201903, cfg.SourceVersion)
	assert.Equal(t, schema.V201605, cfg.TargetVersion)
	assert.Equal(t, document.FormatYAML, cfg.OutputFormat)
	assert.True(t, cfg.Mode().Has(options.ModeRecursive))
	assert.True(t, cfg.Mode().Has(options.ModeDiscardFieldErrors))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate(supported))
	assert.Equal(t, options.ModeRecursive, cfg.Mode())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"syntax":         `app = `,
		"unknown key":    `colour = "blue"`,
		"log level":      `log_level = "loud"`,
		"source version": `source_version = "May 2016"`,
		"target version": `target_version = "-201605"`,
		"format":         `output_format = "xml"`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.TargetVersion = schema.V202002
	require.ErrorIs(t, cfg.Validate(supported), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.SourceVersion = schema.V201505
	require.ErrorIs(t, cfg.Validate(supported), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.App = ""
	require.ErrorIs(t, cfg.Validate(supported), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.DiscardFieldErrors = true
	cfg.FailOnDiagnostics = true
	require.ErrorIs(t, cfg.Validate(supported), config.ErrInvalidConfig)
}
