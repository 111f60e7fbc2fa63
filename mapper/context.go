package mapper

import (
	"strconv"

	"github.com/rs/zerolog"

	"pnp-mapper/diagnostic"
	"pnp-mapper/options"
)

// Context is the state shared by every step of one mapping call: the
// resolver set, the mode flags, a logger, the path of the field being
// mapped and the sink for field failures.
//
// A Context is a value; deriving a child (At, Index) never changes the
// parent. Children share the parent's diagnostics sink.
type Context struct {
	Resolvers Set
	Mode      options.ModeEnum
	Logger    zerolog.Logger

	path    string
	diags   *diagnostic.Diagnostics
	checked bool // Resolvers already validated
}

// Option configures a Context built by NewContext.
type Option func(*Context)

// WithRecursive turns descent into collections and arrays on or off.
func WithRecursive(recursive bool) Option {
	return func(c *Context) {
		c.Mode = c.Mode.With(options.ModeRecursive, recursive)
	}
}

// WithMode replaces the mode flags.
func WithMode(mode options.ModeEnum) Option {
	return func(c *Context) {
		c.Mode = mode
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) {
		c.Logger = logger
	}
}

// WithDiagnostics makes the context report into d, so several mapping
// calls can share one report.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(c *Context) {
		if d != nil {
			c.diags = d
		}
	}
}

// WithPath sets the path prefix of reported fields.
func WithPath(path string) Option {
	return func(c *Context) {
		c.path = path
	}
}

// NewContext returns a context mapping with resolvers.
func NewContext(resolvers Set, opts ...Option) Context {
	c := Context{
		Resolvers: resolvers,
		Logger:    zerolog.Nop(),
		diags:     &diagnostic.Diagnostics{},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Recursive reports whether collections and arrays are mapped.
func (c Context) Recursive() bool {
	return c.Mode.Has(options.ModeRecursive)
}

// Path returns the path of the field being mapped, relative to the root.
func (c Context) Path() string {
	return c.path
}

// Diagnostics returns the failures reported so far.
func (c Context) Diagnostics() diagnostic.Diagnostics {
	if c.diags == nil {
		return diagnostic.Diagnostics{}
	}

	return *c.diags
}

// At returns a child context for field name.
func (c Context) At(name string) Context {
	if c.path == "" {
		c.path = name
	} else {
		c.path += "." + name
	}

	return c
}

// Index returns a child context for element i.
func (c Context) Index(i int) Context {
	c.path += "[" + strconv.Itoa(i) + "]"
	return c
}

// WithResolvers returns a copy of c using resolvers.
func (c Context) WithResolvers(resolvers Set) Context {
	c.Resolvers = resolvers
	c.checked = false

	return c
}

func (c Context) fail(code string, err error, typePair string) {
	if c.Mode.Has(options.ModeDiscardFieldErrors) || c.diags == nil {
		c.Logger.Debug().Err(err).Str("field", c.path).Str("code", code).Msg("field failure discarded")
		return
	}

	c.Logger.Debug().Err(err).Str("field", c.path).Str("code", code).Msg("field failure")
	c.diags.AddError(code, err, typePair, c.path)
}

func (c Context) note(code, message, typePair string) {
	if c.diags == nil {
		return
	}

	c.diags.AddInfo(code, message, typePair, c.path)
}
