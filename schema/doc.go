// Package schema describes versions of the persisted provisioning document
// format and the loosely typed Go representations decoded from them.
//
// Each version lives in its own sub-package (v201605, v201903, ...) and
// publishes a TypeTable naming its types, so serializers can find a
// version's types by name instead of importing every version.
package schema
