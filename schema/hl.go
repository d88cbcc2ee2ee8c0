package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

// HLLevelCode returns a Rule predicate matching an HL segment whose
// HL03 (level code) equals code.
func HLLevelCode(code string) func(seg x12.Segment) bool {
	return func(seg x12.Segment) bool {
		return seg.Scalar(3) == code
	}
}

// HLAction returns a dispatch Action for an HL segment that opens
// loopName, resolves its parent loop from the HL's own parent_id
// against every earlier-seen HL record, attaches the segment, and
// records the HL's linkage fields on the transaction for the hierarchy
// validators to check later (spec §4.7).
func HLAction(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		id := seg.Scalar(1)
		parentID := seg.Scalar(2)
		levelCode := seg.Scalar(3)
		childCode := seg.Scalar(4)

		parentIdx := ctx.Tx.Root().Index()
		for _, hl := range ctx.Tx.HLRecords {
			if hl.ID == parentID {
				parentIdx = hl.LoopIndex
				break
			}
		}

		l := ctx.OpenLoop(loopName, parentIdx)
		l.Attach(seg.ID, seg)

		ctx.Tx.HLRecords = append(ctx.Tx.HLRecords, model.HLRecord{
			ID:        id,
			ParentID:  parentID,
			LevelCode: levelCode,
			ChildCode: childCode,
			LoopIndex: l.Index(),
		})
		ctx.HLIndex = l.Index()
		return nil
	}
}

// OpenUnderCurrent returns a dispatch Action that opens loopName as a
// child of the loop currently in scope and attaches seg to it — the
// common case for a loop whose trigger segment is also its first member
// (e.g. NM1 opening loop_2100A).
func OpenUnderCurrent(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		l := ctx.OpenLoop(loopName, ctx.CurrentIndex)
		l.Attach(seg.ID, seg)
		return nil
	}
}

// OpenUnderRoot returns a dispatch Action that opens loopName as a
// child of the transaction's root loop and attaches seg to it — used
// for top-level loops that do not nest under an HL hierarchy (e.g.
// 834's sponsor/payer name loops and member loop).
func OpenUnderRoot(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		l := ctx.OpenLoop(loopName, ctx.Tx.Root().Index())
		l.Attach(seg.ID, seg)
		return nil
	}
}

// OpenUnderHL returns a dispatch Action that opens loopName as a child
// of the loop bound to ctx.HLIndex (the loop of the most recently seen
// HL segment) and attaches seg to it — used for loops nested directly
// under an HL loop rather than under whatever loop is currently open
// (e.g. 837's CLM opening loop_2300 under loop_2000b while loop_2010ba
// is the current loop).
func OpenUnderHL(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		l := ctx.OpenLoop(loopName, ctx.HLIndex)
		l.Attach(seg.ID, seg)
		return nil
	}
}

// OpenUnderLXAndMark returns a dispatch Action that opens loopName as a
// child of the transaction's root loop, attaches seg to it, and rebinds
// ctx.LXIndex to the new loop — used for the header-number loop itself
// (e.g. 835's LX opening loop_2000), so later claim-level rules can
// re-anchor to it with OpenUnderLX regardless of how deeply the
// previous claim nested.
func OpenUnderLXAndMark(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		l := ctx.OpenLoop(loopName, ctx.Tx.Root().Index())
		l.Attach(seg.ID, seg)
		ctx.LXIndex = l.Index()
		return nil
	}
}

// OpenUnderLX returns a dispatch Action that opens loopName as a child
// of the loop bound to ctx.LXIndex (the most recently seen header-number
// loop) and attaches seg to it — used for a loop that repeats once per
// header-number group (e.g. 835's CLP claims under loop_2000), so each
// repetition anchors to the shared header-number loop instead of to
// whatever loop the previous repetition last opened underneath itself.
func OpenUnderLX(loopName string) func(ctx *model.Context, seg x12.Segment) error {
	return func(ctx *model.Context, seg x12.Segment) error {
		l := ctx.OpenLoop(loopName, ctx.LXIndex)
		l.Attach(seg.ID, seg)
		return nil
	}
}
