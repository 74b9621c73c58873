package json

// DupKeyPolicy governs what happens when an object literal repeats a key.
type DupKeyPolicy int

const (
	// DupReject aborts parsing with a DuplicateKeyError (the default).
	DupReject DupKeyPolicy = iota
	// DupAccept overwrites the prior value with the new one.
	DupAccept
	// DupIgnore discards the new value, keeping the prior one.
	DupIgnore
	// DupAppend keeps both entries; lookups prefer the last, iteration
	// yields all of them in insertion order.
	DupAppend
)

// Mode holds the lenient-parsing feature flags.
type Mode struct {
	// AllowFlexibleKeys accepts single-quoted or unquoted object keys.
	AllowFlexibleKeys bool
	// AllowFlexibleStrings accepts single-quoted string values.
	AllowFlexibleStrings bool
	// AllowNocaseValues accepts true/false/null literals in any case.
	AllowNocaseValues bool
	// AllowComments accepts // and /* */ comments between tokens.
	AllowComments bool
}

// Control configures the parser's leniency and duplicate-key handling.
// The zero value has every Mode flag off and dup_key=reject. Hex, binary
// and octal number literals are accepted whatever the Control says.
type Control struct {
	DupKey DupKeyPolicy
	Mode   Mode
	// MaxDepth bounds container nesting; 0 selects the default of 1024.
	MaxDepth int
	// Schema, if non-nil, is invoked once per completed value.
	Schema Validator
}

// ControlOption mutates a Control being built by NewControl.
type ControlOption func(*Control)

// NewControl builds a Control from the given options, with every Mode flag
// off by default.
func NewControl(opts ...ControlOption) Control {
	c := Control{DupKey: DupReject, MaxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDupKeyPolicy sets the duplicate-key policy.
func WithDupKeyPolicy(p DupKeyPolicy) ControlOption {
	return func(c *Control) { c.DupKey = p }
}

// WithFlexibleKeys enables single-quoted/unquoted object keys.
func WithFlexibleKeys() ControlOption {
	return func(c *Control) { c.Mode.AllowFlexibleKeys = true }
}

// WithFlexibleStrings enables single-quoted string values.
func WithFlexibleStrings() ControlOption {
	return func(c *Control) { c.Mode.AllowFlexibleStrings = true }
}

// WithNocaseLiterals enables case-insensitive true/false/null.
func WithNocaseLiterals() ControlOption {
	return func(c *Control) { c.Mode.AllowNocaseValues = true }
}

// WithComments enables // and /* */ comments.
func WithComments() ControlOption {
	return func(c *Control) { c.Mode.AllowComments = true }
}

// WithMaxDepth overrides the container-nesting bound.
func WithMaxDepth(n int) ControlOption {
	return func(c *Control) { c.MaxDepth = n }
}

// WithSchema installs a validator invoked once per completed value.
func WithSchema(v Validator) ControlOption {
	return func(c *Control) { c.Schema = v }
}
