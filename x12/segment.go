package x12

import "strings"

// Segment is an ordered tuple of (segment ID, elements), as recovered by
// the tokenizer from one delimiter-terminated span of the octet stream.
// Elements are 1-indexed in every accessor, matching X12 convention
// where element 01 of NM1 is NM101.
type Segment struct {
	ID       string
	Elements []Element
	Delims   Delimiters
}

// NewSegment builds an empty segment with the given ID and delimiters.
func NewSegment(id string, d Delimiters) Segment {
	return Segment{ID: id, Delims: d}
}

// Get returns the element at the given 1-based ordinal, or the zero
// Element and false if the segment is too short.
func (s Segment) Get(ordinal int) (Element, bool) {
	idx := ordinal - 1
	if idx < 0 || idx >= len(s.Elements) {
		return Element{}, false
	}
	return s.Elements[idx], true
}

// Scalar returns the scalar string at the given 1-based ordinal, or ""
// if the element is absent.
func (s Segment) Scalar(ordinal int) string {
	e, ok := s.Get(ordinal)
	if !ok {
		return ""
	}
	return e.Scalar()
}

// Set assigns the element at the given 1-based ordinal, growing the
// element slice with empty elements as needed.
func (s *Segment) Set(ordinal int, e Element) {
	idx := ordinal - 1
	for idx >= len(s.Elements) {
		s.Elements = append(s.Elements, Element{Reps: []Composite{{""}}})
	}
	s.Elements[idx] = e
}

// Append adds e as the next element.
func (s *Segment) Append(e Element) {
	s.Elements = append(s.Elements, e)
}

// Render serializes the segment to its wire form, omitting empty
// trailing elements, but does not append the segment terminator.
func (s Segment) Render(d Delimiters) string {
	end := len(s.Elements)
	for end > 0 && s.Elements[end-1].IsEmpty() {
		end--
	}

	var b strings.Builder
	b.WriteString(s.ID)
	for i := 0; i < end; i++ {
		b.WriteByte(d.Element)
		b.WriteString(s.Elements[i].Render(d))
	}
	return b.String()
}

// Bytes is Render plus the segment terminator.
func (s Segment) Bytes(d Delimiters) []byte {
	return append([]byte(s.Render(d)), d.Terminator)
}

// String implements fmt.Stringer for debugging.
func (s Segment) String() string {
	return s.Render(s.Delims)
}
