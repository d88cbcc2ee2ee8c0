package framer

import "github.com/healthedi/x12/tokenize"

type config struct {
	tokenizeOpts []tokenize.Option
}

func defaultConfig() config {
	return config{}
}

// Option configures a Framer.
type Option func(*config)

// WithTokenizeOptions forwards options to the underlying tokenize.Tokenizer.
func WithTokenizeOptions(opts ...tokenize.Option) Option {
	return func(c *config) { c.tokenizeOpts = append(c.tokenizeOpts, opts...) }
}
