// Package model defines the in-memory Transaction Model: the nested
// tree of loops and segments built by the Loop Dispatcher for one
// transaction set (ST…SE), plus the mutable Context the dispatcher
// threads through that build.
//
// A Transaction owns every Loop it contains in a flat arena (a []*Loop
// slice); loops reference each other by arena index rather than by
// pointer, so the dispatcher's breadcrumbs (the active subscriber,
// patient and HL loops) are plain integers that remain valid for the
// life of the Transaction without aliasing the tree directly.
package model
