package tokenize

// Default tokenizer configuration values.
const (
	// defaultChunkSize is the bufio.Reader buffer size, per spec §4.2's
	// "configured with a chunk size (default 1 MiB)".
	defaultChunkSize = 1 << 20

	defaultMaxSegmentLength = 1 << 20 // DoS guard: 1 MiB per segment
)

type config struct {
	chunkSize        int
	maxSegmentLength int
	strictWhitespace bool
}

// Option configures a Tokenizer.
type Option func(*config)

func defaultConfig() config {
	return config{
		chunkSize:        defaultChunkSize,
		maxSegmentLength: defaultMaxSegmentLength,
		strictWhitespace: false,
	}
}

// WithChunkSize sets the internal buffer size used to refill from the
// underlying io.Reader. Segments that straddle a refill boundary are
// still assembled correctly; this only tunes I/O granularity.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithMaxSegmentLength bounds the number of octets the tokenizer will
// buffer for a single segment before giving up (DoS protection against
// a stream with no terminator).
func WithMaxSegmentLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSegmentLength = n
		}
	}
}

// WithStrictWhitespace rejects any non-terminator whitespace between
// segments instead of silently absorbing it (spec §9 open question —
// default is permissive, matching spec §4.2's stated default contract).
func WithStrictWhitespace(strict bool) Option {
	return func(c *config) {
		c.strictWhitespace = strict
	}
}
