package validate

import (
	"fmt"

	"github.com/healthedi/x12/model"
)

// LXUniqueness checks that every instance of loopName under the
// transaction's root carries a distinct value at segmentID's ordinal
// (e.g. LX01's assigned number must not repeat across loop 2000 LX
// loops).
func LXUniqueness(loopName, segmentID string, ordinal int) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError
		seen := map[string]bool{}

		for _, loop := range loopsNamed(tx, tx.Root(), loopName) {
			seg, ok := loop.Segment(segmentID)
			if !ok {
				continue
			}
			val := seg.Scalar(ordinal)
			if val == "" {
				continue
			}
			if seen[val] {
				errs = append(errs, model.ValidationError{
					Kind:    "DuplicateValue",
					Path:    fmt.Sprintf("%s/%s%02d", loopName, segmentID, ordinal),
					Message: fmt.Sprintf("duplicate %s%02d value %q across %s loops", segmentID, ordinal, val, loopName),
				})
			}
			seen[val] = true
		}
		return errs
	})
}

// DuplicateQualifierGuard checks that within each instance of loopName,
// no two segments with the given segmentID share the same value at
// qualifierOrdinal (e.g. two REF segments in the same loop both
// qualified "EA").
func DuplicateQualifierGuard(loopName, segmentID string, qualifierOrdinal int) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError

		for li, loop := range loopsNamed(tx, tx.Root(), loopName) {
			seen := map[string]bool{}
			segs := loop.Segments[segmentID]
			for _, seg := range segs {
				q := seg.Scalar(qualifierOrdinal)
				if q == "" {
					continue
				}
				if seen[q] {
					errs = append(errs, model.ValidationError{
						Kind: "DuplicateQualifier",
						Path: fmt.Sprintf("%s[%d]/%s%02d", loopName, li, segmentID, qualifierOrdinal),
						Message: fmt.Sprintf("duplicate %s qualifier %q within %s instance %d",
							segmentID, q, loopName, li),
					})
				}
				seen[q] = true
			}
		}
		return errs
	})
}
