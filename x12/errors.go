package x12

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec §7. ElementTypeError and
// EnumDomainError below unwrap to these so callers can use errors.Is;
// SegmentError unwraps to its Cause, which may be nil.
var (
	// ErrTruncatedSegment indicates EOF arrived mid-segment (no terminator).
	ErrTruncatedSegment = errors.New("truncated segment: no terminator before EOF")
	// ErrTruncatedEnvelope indicates a missing or unterminated envelope trailer.
	ErrTruncatedEnvelope = errors.New("truncated envelope: missing trailer")
	// ErrElementType indicates an element failed to coerce to its schema type.
	ErrElementType = errors.New("element type error")
	// ErrEnumDomain indicates an element's value is not in its schema's enum domain.
	ErrEnumDomain = errors.New("enum domain error")
	// ErrUnknownTransactionVersion indicates no schema is registered for
	// the (transaction code, implementation version) pair.
	ErrUnknownTransactionVersion = errors.New("unknown transaction version")
	// ErrLoopDispatch indicates no rule matched a required segment, or
	// multiple rules conflicted.
	ErrLoopDispatch = errors.New("loop dispatch error")
)

// ElementTypeError reports a single element's failure to coerce to its
// schema type.
type ElementTypeError struct {
	SegmentID string
	Ordinal   int
	Raw       string
	Expected  string
	Cause     error
}

func (e *ElementTypeError) Error() string {
	msg := fmt.Sprintf("%s element %d: value %q is not a valid %s", e.SegmentID, e.Ordinal, e.Raw, e.Expected)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ElementTypeError) Unwrap() error { return ErrElementType }

// EnumDomainError reports an element whose value is not a member of its
// schema's enumerated value set.
type EnumDomainError struct {
	SegmentID string
	Ordinal   int
	Raw       string
	Domain    []string
}

func (e *EnumDomainError) Error() string {
	return fmt.Sprintf("%s element %d: value %q is not one of %v", e.SegmentID, e.Ordinal, e.Raw, e.Domain)
}

func (e *EnumDomainError) Unwrap() error { return ErrEnumDomain }

// SegmentError reports a structural problem tied to one raw segment.
type SegmentError struct {
	SegmentID string
	Reason    string
	Cause     error
}

func (e *SegmentError) Error() string {
	msg := fmt.Sprintf("segment %s: %s", e.SegmentID, e.Reason)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SegmentError) Unwrap() error { return e.Cause }
