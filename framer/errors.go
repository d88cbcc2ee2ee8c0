package framer

import "fmt"

// EnvelopeError reports a mismatch between an envelope trailer (GE,
// IEA) and what the Framer actually counted or echoed from its header.
type EnvelopeError struct {
	Segment string // "GE" or "IEA"
	Reason  string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("framer: %s: %s", e.Segment, e.Reason)
}
