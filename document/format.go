package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"pnp-mapper/internal/common"
)

var ErrUnknownFormat = errors.New("unknown document format")

type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON

	// FormatTotal is a constant that represents the total number of formats defined
	FormatTotal = int(iota)
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return common.UnknownStr
	}
}

// ParseFormat parses "yaml", "yml" or "json", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}
