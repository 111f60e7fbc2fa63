package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/samber/do"

	"pnp-mapper/internal/config"
	"pnp-mapper/internal/observability"
	"pnp-mapper/serializer"
	"pnp-mapper/serializer/provisioning"
)

// newInjector wires the services of one run.
func newInjector(cfg config.Config, stdout, stderr io.Writer) *do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)

	do.Provide(i, func(i *do.Injector) (zerolog.Logger, error) {
		cfg := do.MustInvoke[config.Config](i)
		return observability.InitLogger(cfg.App, cfg.LogLevel, stderr), nil
	})

	do.Provide(i, func(*do.Injector) (*serializer.Registry, error) {
		r := serializer.NewRegistry()
		if err := provisioning.Register(r); err != nil {
			return nil, err
		}

		r.Freeze()

		return r, nil
	})

	do.Provide(i, func(i *do.Injector) (*serializer.Formatter, error) {
		cfg := do.MustInvoke[config.Config](i)
		logger := do.MustInvoke[zerolog.Logger](i)

		return serializer.NewFormatter(do.MustInvoke[*serializer.Registry](i),
			serializer.WithMode(cfg.Mode()),
			serializer.WithLogger(logger),
		), nil
	})

	do.Provide(i, func(i *do.Injector) (*converter, error) {
		return &converter{
			cfg:       do.MustInvoke[config.Config](i),
			logger:    do.MustInvoke[zerolog.Logger](i),
			formatter: do.MustInvoke[*serializer.Formatter](i),
			stdout:    stdout,
		}, nil
	})

	return i
}

func invokeConverter(i *do.Injector) (*converter, error) {
	return do.Invoke[*converter](i)
}
