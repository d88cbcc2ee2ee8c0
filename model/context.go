package model

// Context is the mutable state the Loop Dispatcher threads through a
// transaction's segment stream. It names the teacher's ParserContext
// idiom: a growing transaction plus a handful of breadcrumb slots that
// let rules reattach children across parent-switching transitions
// without walking the tree.
//
// Breadcrumbs are arena indices, not pointers: rebinding one is an O(1)
// integer assignment, and the referenced Loop is always resolved
// through the owning Transaction.
type Context struct {
	Tx *Transaction

	// CurrentIndex is the arena index of the loop currently receiving
	// plain (non-rule-matched) segments.
	CurrentIndex int

	// HLIndex is rebound by the HL-handling rule (schema.HLAction) to the
	// loop each HL segment opens. SubscriberIndex and PatientIndex are
	// breadcrumb slots that no registered rule sets; they stay -1 unless
	// a rule assigns them.
	SubscriberIndex int
	PatientIndex    int
	HLIndex         int

	// LXIndex is the breadcrumb rebound each time an LX (header-number)
	// loop opens, e.g. 835's loop_2000. Claim-level loops nested under it
	// anchor here instead of under CurrentIndex, so a repeating claim
	// loop does not drift under whatever deeper loop the previous claim
	// last opened.
	LXIndex int
}

// NewContext creates a Context positioned at tx's root loop, with all
// breadcrumbs unset.
func NewContext(tx *Transaction) *Context {
	return &Context{
		Tx:              tx,
		CurrentIndex:    tx.Root().Index(),
		SubscriberIndex: -1,
		PatientIndex:    -1,
		HLIndex:         -1,
		LXIndex:         -1,
	}
}

// Current returns the loop the context is currently positioned at.
func (c *Context) Current() *Loop {
	return c.Tx.Loop(c.CurrentIndex)
}

// Subscriber returns the breadcrumbed subscriber loop, or nil if unset.
func (c *Context) Subscriber() *Loop {
	return c.Tx.Loop(c.SubscriberIndex)
}

// Patient returns the breadcrumbed patient loop, or nil if unset.
func (c *Context) Patient() *Loop {
	return c.Tx.Loop(c.PatientIndex)
}

// OpenLoop allocates a new loop under parentIdx, makes it the current
// loop, and returns it.
func (c *Context) OpenLoop(name string, parentIdx int) *Loop {
	l := c.Tx.NewLoop(name, parentIdx)
	c.CurrentIndex = l.Index()
	return l
}
