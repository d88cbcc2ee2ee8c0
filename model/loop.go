package model

import "github.com/healthedi/x12/x12"

// noParent marks the root loop, which has no parent arena index.
const noParent = -1

// Loop is one node of the transaction tree: a named record of segment
// slots (scalar or repeating, keyed by segment ID) plus named child-loop
// slots (keyed by loop name, each a list of arena indices to support
// repeating child loops).
type Loop struct {
	idx       int
	parentIdx int
	Name      string
	Segments  map[string][]x12.Segment
	children  map[string][]int
	// childOrder preserves the order in which child loop names were
	// first populated, for deterministic serialization.
	childOrder []string
	// attached preserves every segment attached to this loop in
	// attachment order, interleaved across segment IDs, so the
	// Serializer can render a loop's segments in the order they were
	// seen rather than grouped by ID.
	attached []x12.Segment
}

func newLoop(idx, parentIdx int, name string) *Loop {
	return &Loop{
		idx:       idx,
		parentIdx: parentIdx,
		Name:      name,
		Segments:  make(map[string][]x12.Segment),
		children:  make(map[string][]int),
	}
}

// Index returns this loop's arena index.
func (l *Loop) Index() int { return l.idx }

// ParentIndex returns the arena index of this loop's parent, or -1 for
// the root.
func (l *Loop) ParentIndex() int { return l.parentIdx }

// IsRoot reports whether this is the transaction's root loop.
func (l *Loop) IsRoot() bool { return l.parentIdx == noParent }

// Attach appends a segment to the named slot.
func (l *Loop) Attach(segmentID string, seg x12.Segment) {
	l.Segments[segmentID] = append(l.Segments[segmentID], seg)
	l.attached = append(l.attached, seg)
}

// Attached returns every segment attached to this loop directly (not
// its child loops), in the order they were attached.
func (l *Loop) Attached() []x12.Segment {
	out := make([]x12.Segment, len(l.attached))
	copy(out, l.attached)
	return out
}

// Segment returns the first segment attached to the named slot.
func (l *Loop) Segment(segmentID string) (x12.Segment, bool) {
	segs := l.Segments[segmentID]
	if len(segs) == 0 {
		return x12.Segment{}, false
	}
	return segs[0], true
}

// SegmentCount returns how many segments are attached to the named slot.
func (l *Loop) SegmentCount(segmentID string) int {
	return len(l.Segments[segmentID])
}

// ChildNames returns child-loop slot names in first-populated order.
func (l *Loop) ChildNames() []string {
	out := make([]string, len(l.childOrder))
	copy(out, l.childOrder)
	return out
}

// ChildIndexes returns the arena indices of the named child-loop slot,
// in the order they were added.
func (l *Loop) ChildIndexes(name string) []int {
	return l.children[name]
}

func (l *Loop) addChild(name string, idx int) {
	if _, ok := l.children[name]; !ok {
		l.childOrder = append(l.childOrder, name)
	}
	l.children[name] = append(l.children[name], idx)
}
