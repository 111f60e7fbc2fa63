// Package resolvers holds the value resolvers serializers use for fields
// the default copy cannot handle: enums stored as strings, permission masks
// stored as comma-separated names, free-form "any" content and constant
// values.
package resolvers
