package view

import "github.com/healthedi/x12/x12"

// Segment is the JSON rendering of one raw x12.Segment, used by the
// CLI's -s mode and the HTTP shim's "segments" output. Elements render
// as their wire text (so a composite or repeated element round-trips as
// one string, component/repetition separators intact) rather than as
// nested arrays — this is a debugging view, not a typed one.
type Segment struct {
	ID       string   `json:"id"`
	Elements []string `json:"elements,omitempty"`
}

// Options controls how FromSegment and FromTransaction render.
type Options struct {
	// ExcludeUnset drops empty elements (and, transitively, segments or
	// loops left with nothing else to show) instead of rendering them
	// as empty strings in their positional slot.
	ExcludeUnset bool
}

// FromSegment renders seg using delims to reproduce each element's wire
// text.
func FromSegment(seg x12.Segment, delims x12.Delimiters, opts Options) Segment {
	out := Segment{ID: seg.ID}
	for _, e := range seg.Elements {
		if opts.ExcludeUnset && e.IsEmpty() {
			continue
		}
		out.Elements = append(out.Elements, e.Render(delims))
	}
	return out
}
