package x12

import "strings"

// Element is a single positional field within a Segment. It carries one
// or more repetitions (separated by the repetition separator); each
// repetition is a Composite (one or more sub-elements separated by the
// component separator). The common case — a plain scalar — is a single
// repetition holding a single-component Composite.
type Element struct {
	Reps []Composite
}

// NewScalar builds a plain scalar Element from a single string.
func NewScalar(v string) Element {
	return Element{Reps: []Composite{{v}}}
}

// ParseElement splits raw element data into its repetitions and
// composites using the given delimiters.
func ParseElement(raw string, d Delimiters) Element {
	if raw == "" {
		return Element{Reps: []Composite{{""}}}
	}
	var reps []string
	if containsByte(raw, d.Repetition) {
		reps = strings.Split(raw, string(d.Repetition))
	} else {
		reps = []string{raw}
	}
	out := Element{Reps: make([]Composite, len(reps))}
	for i, r := range reps {
		out.Reps[i] = splitComposite(r, d.Component)
	}
	return out
}

// IsEmpty reports whether the element carries no data at all (used to
// detect and drop trailing empty elements on serialization).
func (e Element) IsEmpty() bool {
	for _, rep := range e.Reps {
		for _, v := range rep {
			if v != "" {
				return false
			}
		}
	}
	return true
}

// IsRepeated reports whether this element carries more than one
// repetition.
func (e Element) IsRepeated() bool {
	return len(e.Reps) > 1
}

// Scalar returns the first sub-element of the first repetition — the
// value for a plain, non-composite, non-repeating element.
func (e Element) Scalar() string {
	if len(e.Reps) == 0 {
		return ""
	}
	return e.Reps[0].Scalar()
}

// Composite returns the first repetition in full, for composite
// (multi-component) elements.
func (e Element) Composite() Composite {
	if len(e.Reps) == 0 {
		return nil
	}
	return e.Reps[0]
}

// Repetitions returns every repetition's scalar value, in order,
// preserving duplicates — used for elements typed as a repeating
// simple value (e.g. a repeating ID element).
func (e Element) Repetitions() []string {
	out := make([]string, len(e.Reps))
	for i, r := range e.Reps {
		out[i] = r.Scalar()
	}
	return out
}

// Render joins the element back to its wire form using d.
func (e Element) Render(d Delimiters) string {
	parts := make([]string, len(e.Reps))
	for i, r := range e.Reps {
		parts[i] = r.join(d.Component)
	}
	// Drop trailing empty repetitions.
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return strings.Join(parts[:end], string(d.Repetition))
}
