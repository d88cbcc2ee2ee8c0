package schema

import "github.com/healthedi/x12/model"

// TransactionSchema is everything the registry returns for one
// (transaction code, implementation version) pair: the root loop
// grammar, the dispatch rule table, and the cross-segment validators to
// run once the model is closed.
type TransactionSchema struct {
	Code    string
	Version string

	// Root is the schema for the transaction's top-level loop (the
	// Header loop plus every named top-level loop slot).
	Root *LoopSchema

	// HeaderSegments are the segments expected directly under Root
	// before any named loop opens (ST and transaction-specific initial
	// segments, e.g. BHT).
	HeaderSegments []SegmentSchema

	// FooterSegments are SE and any trailing optional segment fixed at
	// the transaction's footer position (e.g. PLB in 835 — spec §9's
	// open question on trailing-optional segments is resolved by fixing
	// their position here rather than discovering them via a duplicated
	// dispatch rule).
	FooterSegments []SegmentSchema

	Rules      []Rule
	Validators []model.Validator

	// loopsByName indexes Root and every descendant LoopSchema by name,
	// built once by Register so the dispatcher can resolve a loop's
	// segment-slot cardinality without walking the tree on every segment.
	loopsByName map[string]*LoopSchema
}

// RuleFor returns every rule registered for segmentID, in declaration
// order (first-match-wins is enforced by the dispatcher, not here).
func (t *TransactionSchema) RuleFor(segmentID string) []Rule {
	var out []Rule
	for _, r := range t.Rules {
		if r.SegmentID == segmentID {
			out = append(out, r)
		}
	}
	return out
}

// LoopSchemaNamed returns the LoopSchema registered under name, built by
// indexing Root at Register time.
func (t *TransactionSchema) LoopSchemaNamed(name string) (*LoopSchema, bool) {
	ls, ok := t.loopsByName[name]
	return ls, ok
}

func (t *TransactionSchema) buildLoopIndex() {
	t.loopsByName = map[string]*LoopSchema{}
	var walk func(l *LoopSchema)
	walk = func(l *LoopSchema) {
		if l == nil {
			return
		}
		t.loopsByName[l.Name] = l
		for _, c := range l.Children {
			walk(c.Loop)
		}
	}
	walk(t.Root)
}
