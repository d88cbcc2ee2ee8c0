package model

import "github.com/healthedi/x12/x12"

// HLRecord captures one HL segment's hierarchical-linkage fields, used
// by the HL parentage and child-code validators without re-walking the
// loop tree.
type HLRecord struct {
	ID        string
	ParentID  string
	LevelCode string
	ChildCode string
	LoopIndex int
}

// Transaction is the closed, validated in-memory model of one
// transaction set (ST…SE). It is built incrementally by the Loop
// Dispatcher via a Context and is treated as immutable once returned
// from the engine.
type Transaction struct {
	Code    string
	Version string
	Delims  x12.Delimiters

	// ControlNumber is ST02, echoed by SE02.
	ControlNumber string

	// SegmentCount is the number of segments seen from ST through SE,
	// inclusive, counted as the dispatcher processes the stream.
	SegmentCount int

	// DeclaredSegmentCount is SE01's value, set once SE is parsed.
	DeclaredSegmentCount int

	// HLRecords holds every HL segment's linkage fields in document order.
	HLRecords []HLRecord

	// Trailer holds segments that appear after the last named loop but
	// before SE (e.g. PLB in 835), keyed by segment ID.
	Trailer map[string][]x12.Segment

	loops []*Loop
}

// New creates a Transaction with an empty root loop named "header".
func New(code, version string, delims x12.Delimiters) *Transaction {
	t := &Transaction{
		Code:    code,
		Version: version,
		Delims:  delims,
		Trailer: make(map[string][]x12.Segment),
	}
	root := newLoop(0, noParent, "header")
	t.loops = append(t.loops, root)
	return t
}

// Root returns the transaction's root loop (index 0).
func (t *Transaction) Root() *Loop {
	return t.loops[0]
}

// Loop returns the loop at the given arena index.
func (t *Transaction) Loop(idx int) *Loop {
	if idx < 0 || idx >= len(t.loops) {
		return nil
	}
	return t.loops[idx]
}

// NewLoop allocates a new loop named name under parentIdx and returns it.
func (t *Transaction) NewLoop(name string, parentIdx int) *Loop {
	idx := len(t.loops)
	l := newLoop(idx, parentIdx, name)
	t.loops = append(t.loops, l)
	if parentIdx >= 0 && parentIdx < len(t.loops)-1 {
		t.loops[parentIdx].addChild(name, idx)
	}
	return l
}

// FindAll returns every loop in the transaction with the given name, in
// the order they were created. Because every loop lives in a single
// flat arena regardless of nesting depth, this is a linear scan rather
// than a tree walk.
func (t *Transaction) FindAll(name string) []*Loop {
	var out []*Loop
	for _, l := range t.loops {
		if l.Name == name {
			out = append(out, l)
		}
	}
	return out
}

// AllLoops returns every loop in the transaction, in arena order
// (creation order), which is also document order.
func (t *Transaction) AllLoops() []*Loop {
	out := make([]*Loop, len(t.loops))
	copy(out, t.loops)
	return out
}
