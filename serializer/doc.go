// Package serializer dispatches between schema versions and the domain
// model.
//
// Each part of the domain model (template properties, custom actions,
// site footer and so on) has one or more Serializer implementations, each
// registered with the oldest schema version it understands. For a target
// version the Registry picks, per domain type, the registration with the
// highest minimum version not above the target; ties go to the one
// registered as default.
//
// A Formatter runs every selected serializer, in sequence order, over a
// whole document:
//
//	reg := serializer.NewRegistry()
//	provisioning.Register(reg)
//	reg.Freeze()
//
//	f := serializer.NewFormatter(reg)
//	template, diags, err := f.ToDomain(v201903.Types(), document)
package serializer
