// Package schema is the process-wide, read-only-after-init Schema
// Registry: per-(transaction code, implementation version) loop
// grammars, segment schemas, element schemas, dispatch rules and
// cross-segment validators. It also implements the Element Typer,
// coercing raw x12.Element values to typed Go values per element
// schema.
//
// Nothing in this package parses a document; it only declares shape.
// Registration happens once, from Go literals, in this package's
// init() and the per-transaction files under schema/transaction_*.go —
// adding a transaction means adding a new registration, not changing
// any other package.
package schema
