package morse

import (
	"strings"
	"unicode"
)

// Default glyphs.
const (
	DefaultDash      = "-"
	DefaultDot       = "."
	DefaultSpace     = "/"
	DefaultSeparator = " "
)

// Options configures a translation. Zero-valued fields take the defaults
// listed in DefaultOptions. Encoding and decoding the same text must use
// the same Options for the round trip to hold.
type Options struct {
	// Dash and Dot render the two marks.
	Dash string
	Dot  string

	// Space separates words, Separator separates letters within a word.
	Space     string
	Separator string

	// Invalid resolves input that cannot be mapped.
	Invalid InvalidFunc

	// Priority decides which set owns a pattern shared by several sets.
	Priority PriorityOrder

	// Exclusive restricts lookups to the sets in Priority. Otherwise
	// every other set is consulted after them in canonical order.
	Exclusive bool

	// Registry supplies the tables. Nil means DefaultRegistry().
	Registry *Registry
}

// DefaultOptions returns the options used for zero-valued fields.
func DefaultOptions() Options {
	return Options{
		Dash:      DefaultDash,
		Dot:       DefaultDot,
		Space:     DefaultSpace,
		Separator: DefaultSeparator,
		Invalid:   DefaultInvalid,
		Priority:  DefaultPriority(),
		Registry:  DefaultRegistry(),
	}
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	if o.Dash == "" {
		o.Dash = DefaultDash
	}
	if o.Dot == "" {
		o.Dot = DefaultDot
	}
	if o.Space == "" {
		o.Space = DefaultSpace
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.Invalid == nil {
		o.Invalid = DefaultInvalid
	}
	if len(o.Priority) == 0 {
		o.Priority = DefaultPriority()
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	return o
}

// lookupOrder returns the sets consulted for lookups.
func (o Options) lookupOrder() PriorityOrder {
	if o.Exclusive {
		return o.Priority
	}
	return o.Priority.Expand()
}

// Validate reports whether the options, after defaults are applied, can
// be decoded unambiguously. Encode and Decode accept any options; New
// rejects options that fail Validate.
func (o Options) Validate() error {
	o = o.withDefaults()

	if err := o.Priority.Validate(); err != nil {
		return err
	}

	marks := []struct{ name, glyph string }{{"dot", o.Dot}, {"dash", o.Dash}}
	for _, m := range marks {
		if strings.IndexFunc(m.glyph, unicode.IsSpace) >= 0 {
			return newConfigError(ErrInvalidOptions, m.name, m.glyph)
		}
		if strings.Contains(m.glyph, o.Space) || strings.Contains(m.glyph, o.Separator) {
			return newConfigError(ErrInvalidOptions, m.name, m.glyph)
		}
	}
	if strings.HasPrefix(o.Dot, o.Dash) || strings.HasPrefix(o.Dash, o.Dot) {
		return newConfigError(ErrInvalidOptions, "dash", o.Dash)
	}
	if strings.Contains(o.Separator, o.Space) || strings.Contains(o.Space, o.Separator) {
		return newConfigError(ErrInvalidOptions, "separator", o.Separator)
	}
	return nil
}

// Option configures a Translator.
type Option func(*Options)

// WithDash sets the dash glyph.
func WithDash(glyph string) Option {
	return func(o *Options) { o.Dash = glyph }
}

// WithDot sets the dot glyph.
func WithDot(glyph string) Option {
	return func(o *Options) { o.Dot = glyph }
}

// WithSpace sets the word separator glyph.
func WithSpace(glyph string) Option {
	return func(o *Options) { o.Space = glyph }
}

// WithSeparator sets the letter separator glyph.
func WithSeparator(glyph string) Option {
	return func(o *Options) { o.Separator = glyph }
}

// WithInvalid sets the handler for unmappable input.
func WithInvalid(fn InvalidFunc) Option {
	return func(o *Options) { o.Invalid = fn }
}

// WithPriority sets the character set priority order.
func WithPriority(sets ...CharacterSet) Option {
	return func(o *Options) { o.Priority = PriorityOrder(sets).clone() }
}

// WithExclusive restricts lookups to the prioritized sets.
func WithExclusive(exclusive bool) Option {
	return func(o *Options) { o.Exclusive = exclusive }
}

// WithRegistry sets the tables to use.
func WithRegistry(r *Registry) Option {
	return func(o *Options) { o.Registry = r }
}

// WithOptions replaces every setting with opts. Later options still apply.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
		o.Priority = opts.Priority.clone()
	}
}
