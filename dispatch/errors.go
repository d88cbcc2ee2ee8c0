package dispatch

import (
	"fmt"

	"github.com/healthedi/x12/x12"
)

// DispatchError reports a segment the Loop Dispatcher could not place:
// no rule matched it and the current loop's schema declares no slot for
// it, or a scalar slot already held a segment.
type DispatchError struct {
	SegmentID string
	LoopName  string
	Reason    string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch: segment %s in loop %s: %s", e.SegmentID, e.LoopName, e.Reason)
}

func (e *DispatchError) Unwrap() error { return x12.ErrLoopDispatch }
