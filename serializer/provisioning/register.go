package provisioning

import (
	"errors"
	"fmt"
	"reflect"

	"pnp-mapper/model"
	"pnp-mapper/schema"
	"pnp-mapper/schema/v201605"
	"pnp-mapper/schema/v201903"
	"pnp-mapper/serializer"
)

var ErrUnsupportedVersion = errors.New("unsupported schema version")

// Sequences of the serializers within a whole-template conversion.
const (
	SequenceTemplate      = 100
	SequenceCustomActions = 1300
	SequenceFooter        = 2600
)

// Register adds every provisioning serializer to r.
func Register(r *serializer.Registry) error {
	regs := []struct {
		domain     reflect.Type
		minVersion schema.Version
		s          serializer.Serializer
		sequence   int
	}{
		{reflect.TypeFor[model.ProvisioningTemplate](), schema.V201605, templateSerializer{}, SequenceTemplate},
		{reflect.TypeFor[model.CustomActions](), schema.V201605, customActionsSerializer{}, SequenceCustomActions},
		{reflect.TypeFor[model.SiteFooter](), schema.V201903, footerSerializer{}, SequenceFooter},
	}

	for _, reg := range regs {
		if err := r.Register(reg.domain, reg.minVersion, true, reg.s, serializer.WithSequence(reg.sequence)); err != nil {
			return err
		}
	}

	return nil
}

// Versions returns the supported schema versions, oldest first.
func Versions() []schema.Version {
	return []schema.Version{v201605.Version, v201903.Version}
}

// TypesFor returns the type table of schema version v.
func TypesFor(v schema.Version) (*schema.TypeTable, error) {
	switch v {
	case v201605.Version:
		return v201605.Types(), nil
	case v201903.Version:
		return v201903.Types(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
}
