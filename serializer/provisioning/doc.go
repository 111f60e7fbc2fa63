// Package provisioning holds the serializers of the provisioning
// template: template properties, custom actions and the site footer.
//
// Register adds them to a serializer.Registry; TypesFor returns the type
// table of each supported schema version.
package provisioning
