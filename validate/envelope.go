package validate

import (
	"fmt"

	"github.com/healthedi/x12/model"
)

// EnvelopeCount checks that SE's declared segment count equals the
// number of segments actually seen from ST through SE, inclusive.
func EnvelopeCount() model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		if tx.DeclaredSegmentCount != tx.SegmentCount {
			return []model.ValidationError{{
				Kind: "SegmentCountMismatch",
				Path: "SE01",
				Message: fmt.Sprintf("SE declares %d segments, counted %d",
					tx.DeclaredSegmentCount, tx.SegmentCount),
			}}
		}
		return nil
	})
}
