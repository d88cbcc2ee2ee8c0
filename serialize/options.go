package serialize

import "github.com/healthedi/x12/x12"

type config struct {
	delims x12.Delimiters
}

func defaultConfig() config {
	return config{}
}

// Option configures a Serializer.
type Option func(*config)

// WithDelimiters overrides the delimiter set used to render every
// segment, instead of the Transaction's own recovered Delims field.
func WithDelimiters(d x12.Delimiters) Option {
	return func(c *config) { c.delims = d }
}
