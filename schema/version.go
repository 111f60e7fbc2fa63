package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pnp-mapper/internal/common"
)

var ErrInvalidVersion = errors.New("invalid schema version")

// Version identifies a document schema version as yyyymm. Versions order
// numerically.
type Version int

const (
	VersionUnknown Version = 0

	V201505 Version = 201505
	V201508 Version = 201508
	V201512 Version = 201512
	V201605 Version = 201605
	V201705 Version = 201705
	V201801 Version = 201801
	V201805 Version = 201805
	V201807 Version = 201807
	V201903 Version = 201903
	V201909 Version = 201909
	V202002 Version = 202002

	// VersionLatest is the newest version known to this package.
	VersionLatest = V202002
)

// ParseVersion accepts "2016-05", "2016/05", "201605" and "V201605".
func ParseVersion(s string) (Version, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "V"), "v")
	if strings.HasPrefix(clean, "-") {
		return VersionUnknown, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	clean = strings.NewReplacer("-", "", "/", "", ".", "").Replace(clean)

	n, err := strconv.Atoi(clean)
	if err != nil || n <= 0 {
		return VersionUnknown, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	v := Version(n)
	if v >= 100000 && !common.IsInRange(1, v.Month(), 12) {
		return VersionUnknown, fmt.Errorf("%w: %q has no valid month", ErrInvalidVersion, s)
	}

	return v, nil
}

// Year returns the year part of a yyyymm version.
func (v Version) Year() int {
	return int(v) / 100
}

// Month returns the month part of a yyyymm version.
func (v Version) Month() int {
	return int(v) % 100
}

// String renders yyyymm versions as "yyyy-mm" and anything else as "V<n>".
func (v Version) String() string {
	if v >= 100000 {
		return fmt.Sprintf("%04d-%02d", v.Year(), v.Month())
	}

	return "V" + strconv.Itoa(int(v))
}

// Namespace returns the document namespace of v.
func (v Version) Namespace() string {
	return fmt.Sprintf("http://schemas.dev.office.com/PnP/%04d/%02d/ProvisioningSchema", v.Year(), v.Month())
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
