// Package model holds the provisioning template domain model: the typed,
// schema-version independent object graph the rest of the system works on.
//
// Collection fields are never nil on values built with the New* constructors;
// the mapper appends to them in place.
package model
