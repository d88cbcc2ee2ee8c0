// Package validate implements the canonical cross-segment validators
// named in spec §4.7: envelope segment counts, HL parentage and child
// codes, the subscriber-as-patient rule, LX uniqueness, monetary
// balance checks, and duplicate-qualifier guards. Every exported
// constructor returns a model.Validator closed over the parameters that
// make it specific to one transaction's schema (its HL level chain, its
// claim loop name, and so on); the validators themselves contain no
// transaction-specific knowledge.
//
// Each Validator is a pure function of a closed model.Transaction: it
// returns every violation it finds and has no side effects, so the
// engine can run all of them unconditionally and aggregate one report
// per transaction (spec §4.7, §7).
package validate
