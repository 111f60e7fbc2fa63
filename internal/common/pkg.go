// Package common holds small helpers shared by the other packages.
package common

// UnknownStr is rendered for enum values outside their declared range.
const UnknownStr = "unknown"
