package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

// Rule is one (segment id, predicate, action) triple of the Loop
// Dispatcher's rule table, as described in spec §4.5. Predicate is
// evaluated against the incoming segment's typed element values;
// Action mutates the dispatch Context — opening a new loop, rebinding a
// breadcrumb, or attaching the segment to the current loop.
//
// Condition is a short, human-readable label for the predicate (e.g.
// "level_code=20"). It exists purely so the registry can detect
// accidentally-overlapping rules for the same segment ID at
// registration time; it plays no role in matching at parse time.
type Rule struct {
	SegmentID string
	Condition string
	Predicate func(seg x12.Segment) bool
	Action    func(ctx *model.Context, seg x12.Segment) error
	Describe  string
}

// Matches reports whether the rule's predicate accepts seg. A rule with
// a nil Predicate matches unconditionally.
func (r Rule) Matches(seg x12.Segment) bool {
	if seg.ID != r.SegmentID {
		return false
	}
	if r.Predicate == nil {
		return true
	}
	return r.Predicate(seg)
}
