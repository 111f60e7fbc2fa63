// Package mapper copies field values between two object graphs that do not
// know each other's shape: a loosely typed schema representation produced
// by a document decoder, and the typed domain model.
//
// # Default copy
//
// [MapProperties] walks the destination struct's exported fields in
// declaration order and copies every field that has a same-named field on
// the source (names compare case-insensitively). Values are assigned when
// the types are assignable, pointer levels are added or removed as needed,
// and a non-string value copied into a string field is rendered with
// [primitive.Text]. Any other mismatch is reported as a field failure.
//
// # Resolvers
//
// A [Set] maps a [Key] (declaring type + field name) to a resolver that
// replaces the default copy:
//
//   - a [ValueResolver] turns the source field's value into the destination
//     field's value;
//   - a [TypeResolver] builds a whole sub-object (or a sequence of them) from
//     the source object.
//
// Sets are usually built from typed field selectors:
//
//	set, err := mapper.NewSet(
//	    mapper.On(func(a *model.CustomAction) any { return &a.Rights }, resolvers.FromStringToBasePermissions()),
//	)
//
// # Collections
//
// A destination field whose type implements [Collection] is a domain
// collection. It is only visited when recursion is on, and it is always
// appended to, never replaced. Slices and arrays are visited only when
// recursion is on as well, and are rebuilt element by element.
//
// # Failures
//
// Resolver errors stop the mapping and are returned as is. Per-field
// assignment failures are collected in a [diagnostic.Diagnostics]; set
// [options.ModeDiscardFieldErrors] to drop them instead.
package mapper
