package dispatch

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/schema"
	"github.com/healthedi/x12/x12"
)

// Dispatch routes one segment against ts's rule table and ctx's current
// position. It mutates ctx in place: a matched rule's Action runs
// directly against ctx, and a fallen-through segment is attached to
// ctx.Current() per the Attachment policy.
func Dispatch(ctx *model.Context, seg x12.Segment, ts *schema.TransactionSchema) error {
	for _, r := range ts.RuleFor(seg.ID) {
		if r.Matches(seg) {
			return r.Action(ctx, seg)
		}
	}
	return attach(ctx, seg, ts)
}

// attach implements the Attachment policy: a segment with no matching
// dispatch rule is appended to the current loop's slot for its ID if
// one is declared, subject to that slot's cardinality. A slot declared
// non-repeating rejects a second occurrence rather than silently
// overwriting the first (spec §4.5's "last-writer-wins is not the
// attachment policy" resolution).
func attach(ctx *model.Context, seg x12.Segment, ts *schema.TransactionSchema) error {
	current := ctx.Current()
	if current == nil {
		return &DispatchError{SegmentID: seg.ID, Reason: "no current loop"}
	}

	ls, ok := ts.LoopSchemaNamed(current.Name)
	if !ok {
		return &DispatchError{SegmentID: seg.ID, LoopName: current.Name, Reason: "loop has no registered schema"}
	}

	slot, ok := ls.SegmentSlot(seg.ID)
	if !ok {
		return &DispatchError{SegmentID: seg.ID, LoopName: current.Name, Reason: "no matching rule or segment slot"}
	}

	if !slot.Repeating && current.SegmentCount(seg.ID) > 0 {
		return &DispatchError{SegmentID: seg.ID, LoopName: current.Name, Reason: "segment slot is not repeating"}
	}

	current.Attach(seg.ID, seg)
	return nil
}
