// Package config loads the pnp-mapper configuration file.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"pnp-mapper/document"
	"pnp-mapper/internal/common"
	"pnp-mapper/options"
	"pnp-mapper/schema"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config drives a conversion.
type Config struct {
	App      string
	LogLevel zerolog.Level

	SourceVersion schema.Version
	TargetVersion schema.Version
	// OutputFormat overrides the format implied by the output file extension.
	OutputFormat document.Format

	DiscardFieldErrors bool
	// FailOnDiagnostics turns reported field failures into a failed run.
	FailOnDiagnostics bool
}

type fileConfig struct {
	App                string `toml:"app"`
	LogLevel           string `toml:"log_level"`
	SourceVersion      string `toml:"source_version"`
	TargetVersion      string `toml:"target_version"`
	OutputFormat       string `toml:"output_format"`
	DiscardFieldErrors bool   `toml:"discard_field_errors"`
	FailOnDiagnostics  bool   `toml:"fail_on_diagnostics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		App:           "pnp-mapper",
		LogLevel:      zerolog.InfoLevel,
		SourceVersion: schema.V201605,
		TargetVersion: schema.V201903,
	}
}

// Load reads the TOML file at path over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if key, found := common.First(meta.Undecoded()); found {
		return Config{}, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, key)
	}

	if meta.IsDefined("app") {
		cfg.App = strings.TrimSpace(raw.App)
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw.LogLevel)))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}

		cfg.LogLevel = level
	}

	if meta.IsDefined("source_version") {
		if cfg.SourceVersion, err = schema.ParseVersion(raw.SourceVersion); err != nil {
			return Config{}, fmt.Errorf("parse source_version: %w", err)
		}
	}

	if meta.IsDefined("target_version") {
		if cfg.TargetVersion, err = schema.ParseVersion(raw.TargetVersion); err != nil {
			return Config{}, fmt.Errorf("parse target_version: %w", err)
		}
	}

	if meta.IsDefined("output_format") {
		if cfg.OutputFormat, err = document.ParseFormat(raw.OutputFormat); err != nil {
			return Config{}, fmt.Errorf("parse output_format: %w", err)
		}
	}

	cfg.DiscardFieldErrors = raw.DiscardFieldErrors
	cfg.FailOnDiagnostics = raw.FailOnDiagnostics

	return cfg, nil
}

// Validate checks cfg against the supported schema versions.
func (c Config) Validate(supported []schema.Version) error {
	if c.App == "" {
		return fmt.Errorf("%w: app is empty", ErrInvalidConfig)
	}

	if !slices.Contains(supported, c.SourceVersion) {
		return fmt.Errorf("%w: source_version %s is not supported", ErrInvalidConfig, c.SourceVersion)
	}

	if !slices.Contains(supported, c.TargetVersion) {
		return fmt.Errorf("%w: target_version %s is not supported", ErrInvalidConfig, c.TargetVersion)
	}

	if c.DiscardFieldErrors && c.FailOnDiagnostics {
		return fmt.Errorf("%w: discard_field_errors and fail_on_diagnostics exclude each other", ErrInvalidConfig)
	}

	return nil
}

// Mode returns the mapping mode selected by c.
func (c Config) Mode() options.ModeEnum {
	return options.ModeRecursive.With(options.ModeDiscardFieldErrors, c.DiscardFieldErrors)
}
