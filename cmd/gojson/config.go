package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	gojson "github.com/shan-anand/gojson"
)

// Config holds CLI flag values for one gojson invocation.
type Config struct {
	Dup             string
	AllowFlexKeys   bool
	AllowFlexString bool
	AllowNocase     bool
	AllowComments   bool
	ShowOutput      string
	Use             string
	MaxDepth        int
}

// NewConfig returns a Config with the CLI's documented defaults.
func NewConfig() *Config {
	return &Config{
		Dup:        "reject",
		ShowOutput: "no",
		Use:        "data",
	}
}

// RegisterFlags adds gojson's flags to the given flag set.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Dup, "dup", c.Dup,
		"duplicate-key policy: accept, ignore, append, reject")
	flags.StringVar(&c.Dup, "duplicate", c.Dup,
		"alias for --dup")
	flags.BoolVar(&c.AllowFlexKeys, "allow-flex-keys", false,
		"accept single-quoted or bare object keys")
	flags.BoolVar(&c.AllowFlexString, "allow-flex-strings", false,
		"accept single-quoted string values")
	flags.BoolVar(&c.AllowNocase, "allow-nocase", false,
		"accept true/false/null literals in any case")
	flags.BoolVar(&c.AllowComments, "allow-comments", false,
		"accept // and /* */ comments")
	flags.StringVar(&c.ShowOutput, "show-output", c.ShowOutput,
		"print the parsed tree: compact, pretty, or no")
	flags.StringVar(&c.Use, "use", c.Use,
		"input mode: mmap or data")
	flags.IntVar(&c.MaxDepth, "max-depth", 0,
		"container nesting bound (0 selects the library default)")
}

// dupKeyPolicy maps the --dup/--duplicate flag value to a gojson.DupKeyPolicy.
func (c *Config) dupKeyPolicy() (gojson.DupKeyPolicy, error) {
	switch strings.ToLower(c.Dup) {
	case "accept":
		return gojson.DupAccept, nil
	case "ignore":
		return gojson.DupIgnore, nil
	case "append":
		return gojson.DupAppend, nil
	case "reject", "":
		return gojson.DupReject, nil
	default:
		return 0, fmt.Errorf("%w: unknown --dup value %q", ErrInvalidOption, c.Dup)
	}
}

// control builds the gojson.Control this configuration describes.
func (c *Config) control() (gojson.Control, error) {
	dup, err := c.dupKeyPolicy()
	if err != nil {
		return gojson.Control{}, err
	}

	var opts []gojson.ControlOption
	opts = append(opts, gojson.WithDupKeyPolicy(dup))
	if c.AllowFlexKeys {
		opts = append(opts, gojson.WithFlexibleKeys())
	}
	if c.AllowFlexString {
		opts = append(opts, gojson.WithFlexibleStrings())
	}
	if c.AllowNocase {
		opts = append(opts, gojson.WithNocaseLiterals())
	}
	if c.AllowComments {
		opts = append(opts, gojson.WithComments())
	}
	if c.MaxDepth > 0 {
		opts = append(opts, gojson.WithMaxDepth(c.MaxDepth))
	}

	return gojson.NewControl(opts...), nil
}

// outputFormat maps --show-output to a (show bool, format) pair.
func (c *Config) outputFormat() (bool, gojson.Format, error) {
	switch strings.ToLower(c.ShowOutput) {
	case "no", "":
		return false, gojson.Format{}, nil
	case "compact":
		return true, gojson.CompactFormat(), nil
	case "pretty":
		return true, gojson.PrettyFormat(2), nil
	default:
		return false, gojson.Format{}, fmt.Errorf("%w: unknown --show-output value %q", ErrInvalidOption, c.ShowOutput)
	}
}
