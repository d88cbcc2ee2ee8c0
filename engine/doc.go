// Package engine is the top-level façade named in spec §6: Parse reads
// a whole interchange and returns every transaction it contains plus
// its validation report; ParseSegments exposes the same work one
// transaction at a time for streaming callers; Serialize renders a
// transaction back to wire bytes. It composes framer, dispatch (via
// framer), validate and serialize without exposing their package
// boundaries to callers.
package engine
