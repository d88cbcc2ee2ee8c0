// Package x12 provides the core positional data types shared by every
// layer of the ASC X12 engine: delimiters, elements, composites,
// repetitions and segments.
//
// # Document structure
//
// An X12 interchange is a stream of segments, each segment an ordered
// list of elements:
//
//   - Segment contains Elements
//   - Element is a scalar, a Repetition (separated by the repetition
//     separator), or a Composite (separated by the component separator)
//   - Composite contains scalar sub-elements
//
// # Delimiters
//
// Delimiters are recovered from the interchange header (ISA) rather than
// fixed by the format: element separator, component separator,
// repetition separator and segment terminator. They travel with every
// Segment produced by the tokenizer so that re-serialization is
// byte-faithful.
package x12
