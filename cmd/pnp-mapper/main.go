// Package main provides the pnp-mapper CLI.
//
// pnp-mapper converts provisioning documents between schema versions by
// mapping them through the domain model:
//
//	pnp-mapper convert -config cfg.toml -in template.yaml -out template.json
//	pnp-mapper versions
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pnp-mapper/internal/config"
	"pnp-mapper/schema"
	"pnp-mapper/serializer/provisioning"
)

var errUsage = errors.New("usage: pnp-mapper convert [-config file] [-from version] [-to version] -in file [-out file] | pnp-mapper versions")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pnp-mapper: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, stderr)
	case "versions":
		for _, v := range provisioning.Versions() {
			fmt.Fprintln(stdout, v)
		}

		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func runConvert(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "TOML configuration file")
	from := fs.String("from", "", "schema version of the input, overrides source_version")
	to := fs.String("to", "", "schema version of the output, overrides target_version")
	in := fs.String("in", "", "input document (.yaml, .yml or .json)")
	out := fs.String("out", "-", "output document, - for stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return errUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	for _, o := range []struct {
		flag   string
		target *schema.Version
	}{{*from, &cfg.SourceVersion}, {*to, &cfg.TargetVersion}} {
		if o.flag == "" {
			continue
		}

		v, err := schema.ParseVersion(o.flag)
		if err != nil {
			return err
		}

		*o.target = v
	}

	if err := cfg.Validate(provisioning.Versions()); err != nil {
		return err
	}

	injector := newInjector(cfg, stdout, stderr)
	defer func() { _ = injector.Shutdown() }()

	conv, err := invokeConverter(injector)
	if err != nil {
		return err
	}

	return conv.Convert(*in, *out)
}
