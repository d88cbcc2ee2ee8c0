package x12

import "strings"

// Composite is an ordered list of sub-elements delimited by the
// component separator. A non-composite element is simply a Composite
// of length one.
type Composite []string

// Scalar returns the first sub-element, or "" if the composite is empty.
func (c Composite) Scalar() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// IsComposite reports whether this element actually carries more than
// one component, as opposed to being a plain scalar.
func (c Composite) IsComposite() bool {
	return len(c) > 1
}

// join renders the composite using sep as the component separator,
// dropping trailing empty sub-elements.
func (c Composite) join(sep byte) string {
	end := len(c)
	for end > 0 && c[end-1] == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	parts := make([]string, end)
	copy(parts, c[:end])
	return strings.Join(parts, string(sep))
}

// splitComposite breaks raw element data on the component separator.
func splitComposite(raw string, sep byte) Composite {
	if !containsByte(raw, sep) {
		return Composite{raw}
	}
	parts := strings.Split(raw, string(sep))
	out := make(Composite, len(parts))
	copy(out, parts)
	return out
}

func containsByte(s string, b byte) bool {
	return strings.IndexByte(s, b) >= 0
}
