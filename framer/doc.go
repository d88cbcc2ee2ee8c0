// Package framer implements the Interchange Framer of spec §4.6: it
// drives a tokenize.Tokenizer across ISA…IEA and splits out one or more
// functional groups (GS…GE), each carrying one or more transaction sets
// (ST…SE). Every ST…SE span is routed through the Loop Dispatcher
// against the schema registered for its (transaction code, version)
// pair and yielded as a closed model.Transaction, in the style of
// tokenize.Tokenizer's own pull-based Scan/Transaction/Err loop.
//
// Envelope-level problems — a GE01 or IEA01 count that does not match
// what was actually seen, a GS/ISA control number echoed wrong on the
// matching trailer — do not abort the scan; they accumulate and are
// reported once scanning finishes, since they describe the envelope as
// a whole rather than any one transaction.
package framer
