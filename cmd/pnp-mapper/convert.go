package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"pnp-mapper/diagnostic"
	"pnp-mapper/document"
	"pnp-mapper/internal/config"
	"pnp-mapper/serializer"
	"pnp-mapper/serializer/provisioning"
)

// converter maps a document of the source version to the target version.
type converter struct {
	cfg       config.Config
	logger    zerolog.Logger
	formatter *serializer.Formatter
	stdout    io.Writer
}

func (c *converter) Convert(in, out string) error {
	sourceTypes, err := provisioning.TypesFor(c.cfg.SourceVersion)
	if err != nil {
		return err
	}

	targetTypes, err := provisioning.TypesFor(c.cfg.TargetVersion)
	if err != nil {
		return err
	}

	root, err := document.LoadFile(in, sourceTypes)
	if err != nil {
		return err
	}

	template, diags, err := c.formatter.ToDomain(sourceTypes, root)
	if err != nil {
		return err
	}

	c.report("read", diags)

	result, outDiags, err := c.formatter.FromDomain(targetTypes, template)
	if err != nil {
		return err
	}

	c.report("write", outDiags)

	diags.Merge(outDiags)
	if c.cfg.FailOnDiagnostics && diags.HasErrors() {
		return fmt.Errorf("conversion reported field failures: %w", diags.Error())
	}

	if err := c.write(result, out); err != nil {
		return err
	}

	c.logger.Info().
		Str("in", in).
		Str("out", out).
		Str("from", c.cfg.SourceVersion.String()).
		Str("to", c.cfg.TargetVersion.String()).
		Msg("converted")

	return nil
}

func (c *converter) write(result any, out string) error {
	format := c.cfg.OutputFormat

	if out == "-" {
		if format == document.FormatUnknown {
			format = document.FormatYAML
		}

		data, err := document.Encode(result, format)
		if err != nil {
			return err
		}

		_, err = c.stdout.Write(data)

		return err
	}

	if format == document.FormatUnknown {
		return document.WriteFile(result, out)
	}

	data, err := document.Encode(result, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", out, err)
	}

	return nil
}

func (c *converter) report(stage string, diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		c.logger.Warn().
			Str("stage", stage).
			Str("code", d.Code).
			Str("field", d.FieldPath).
			Str("types", d.TypePair).
			Err(d.Err).
			Msg("field not mapped")
	}

	for _, d := range diags.Infos {
		c.logger.Debug().
			Str("stage", stage).
			Str("code", d.Code).
			Str("field", d.FieldPath).
			Msg(d.Message)
	}
}
