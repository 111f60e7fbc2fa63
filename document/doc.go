// Package document reads and writes provisioning documents as YAML or
// JSON. Documents decode into the root type of a schema version.
package document
