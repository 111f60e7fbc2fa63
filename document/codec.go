package document

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"pnp-mapper/schema"
)

// Decode parses data as the document root of the version described by
// types. The result is a pointer to the root type.
func Decode(data []byte, format Format, types *schema.TypeTable) (any, error) {
	root, err := types.New(schema.Root)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, root)
	case FormatJSON:
		err = json.Unmarshal(data, root)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document (schema %s): %w", format, types.Version(), err)
	}

	return root, nil
}

// Encode renders root in format.
func Encode(root any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(root)
	case FormatJSON:
		return json.MarshalIndent(root, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// LoadFile reads the document at path; the format follows the extension.
func LoadFile(path string, types *schema.TypeTable) (any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Decode(data, format, types)
}

// WriteFile writes root to path; the format follows the extension.
func WriteFile(root any, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Encode(root, format)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}
