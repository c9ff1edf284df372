package streamjson

const defaultBufSize = 16 * 1024

// Config holds the tunable behaviour of a parsing pipeline. A non-positive
// BufSize is replaced by the 16 KiB default when a Lexer is built; build
// one with DefaultConfig and Option funcs, or let BasicParse/Parse/Items
// do it for you.
type Config struct {
	BufSize        int
	AllowComments  bool
	MultipleValues bool
	Debug          bool
}

// DefaultConfig returns the configuration used when no Option overrides it:
// a 16 KiB read buffer, comments disabled, single top-level value required.
func DefaultConfig() Config {
	return Config{BufSize: defaultBufSize}
}

// Option mutates a Config in place.
type Option func(*Config)

// WithBufSize sets the lexer's read chunk size. Non-positive values are
// ignored.
func WithBufSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.BufSize = n
		}
	}
}

// WithAllowComments enables skipping `//` and `/* */` comments between
// lexemes.
func WithAllowComments(allow bool) Option {
	return func(c *Config) { c.AllowComments = allow }
}

// WithMultipleValues allows additional top-level values after the first
// instead of reporting "Additional data".
func WithMultipleValues(allow bool) Option {
	return func(c *Config) { c.MultipleValues = allow }
}

// WithDebug turns on debug logging of buffer growth/compaction, mirroring
// JSONLexer.SetDebug in the lexer this package is descended from.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
