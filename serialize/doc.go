// Package serialize converts a closed model.Transaction back to its
// X12 wire-format bytes (spec §4.8). It mirrors the teacher's encode
// package: a functional-option Serializer, a context-aware
// SerializeToWriter for streaming output, and a structured *Error
// reporting which loop failed.
//
// Each segment is written through x12.Segment.Render, which drops
// trailing empty elements, with no whitespace between segments. The
// interchange and functional-group envelopes (ISA, GS, GE, IEA) are not
// written, so the output on its own is not a complete interchange.
package serialize
