// Package dispatch implements the Loop Dispatcher of spec §4.5: given a
// transaction schema's rule table and a dispatch Context, it routes each
// incoming segment to the action that opens a new loop, rebinds a
// breadcrumb, or attaches the segment to the loop currently in scope.
//
// Dispatch tries schema rules first, in declaration order, and commits
// to the first match (the registry rejects a schema with two rules for
// one segment ID that share a Condition label, or with more than one
// unconditional rule for it; predicates with different labels are not
// compared). A
// segment with no matching rule falls through to the Attachment policy:
// it is attached to the current loop if the loop's schema declares a
// slot for it, honoring that slot's cardinality, and is otherwise a
// dispatch error.
package dispatch
