package options

// ModeEnum selects optional mapper behaviour.
type ModeEnum int

const (
	ModeRecursive          ModeEnum = 1 << iota // descend into domain collections and arrays
	ModeDiscardFieldErrors                      // drop per-field assignment failures instead of reporting them

	ModeAll  ModeEnum = (1 << iota) - 1 // all modes combined
	ModeNone ModeEnum = 0               // no modes selected
)

// Has reports whether every flag of flag is set in m.
func (m ModeEnum) Has(flag ModeEnum) bool {
	return m&flag == flag
}

// With returns m with flag set or cleared.
func (m ModeEnum) With(flag ModeEnum, on bool) ModeEnum {
	if on {
		return m | flag
	}

	return m &^ flag
}
