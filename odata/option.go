package odata

import (
	"github.com/ardnew/odatauri/log"
	"github.com/ardnew/odatauri/parse"
)

// DefaultMaxDepth is the default limit on nested recursive rule activations.
const DefaultMaxDepth = parse.DefaultMaxDepth

// config holds parse configuration options.
type config struct {
	logger   log.Logger
	maxDepth int
	partial  bool
	cache    bool
}

// Option configures parsing behavior.
type Option func(*config)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxDepth sets the maximum nesting of recursive rules such as
// parenthesized expressions and nested expand options.
// Values less than one select [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		c.maxDepth = depth
	}
}

// WithPartial accepts input the rule matches only a prefix of.
// The unmatched remainder is reported in [Document.Rest].
func WithPartial(partial bool) Option {
	return func(c *config) {
		c.partial = partial
	}
}

// WithCache enables or disables the parse cache. It is enabled by default.
func WithCache(enable bool) Option {
	return func(c *config) {
		c.cache = enable
	}
}

func makeConfig(opts ...Option) config {
	c := config{maxDepth: DefaultMaxDepth, cache: true}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// cacheable reports whether results parsed under c may be shared with
// parses made with default options.
func (c config) cacheable() bool {
	return c.cache && !c.partial && c.maxDepth == DefaultMaxDepth
}
