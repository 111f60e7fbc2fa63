package serializer

import (
	"pnp-mapper/model"
)

// Serializer converts one part of a provisioning template between the
// domain model and a schema document root.
//
// persistence is a pointer to the document root of the scope's schema
// version. Errors are fatal for the whole conversion; per-field problems
// go to the scope's diagnostics.
type Serializer interface {
	Deserialize(sc Scope, persistence any, template *model.ProvisioningTemplate) error
	Serialize(sc Scope, template *model.ProvisioningTemplate, persistence any) error
}

// Direction tells which way a conversion runs.
type Direction int

const (
	DirectionDeserialize Direction = iota // schema document to domain model
	DirectionSerialize                    // domain model to schema document

	// DirectionTotal is a constant that represents the total number of directions defined
	DirectionTotal = int(iota)
)

func (d Direction) String() string {
	switch d {
	case DirectionDeserialize:
		return "deserialize"
	case DirectionSerialize:
		return "serialize"
	default:
		return "unknown"
	}
}
