package validate

import (
	"fmt"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
	"github.com/shopspring/decimal"
)

// ClaimBalance checks, for every instance of claimLoopName (835 loop
// 2100), that chargeOrdinal minus paymentOrdinal on clpSegmentID equals
// the sum of every CAS adjustment amount found directly in the claim
// loop and in every nested instance of lineLoopName — CAS amounts sit at
// ordinals 3, 6, 9, 12, 15, 18 (every third element starting at 3,
// alternating with a reason-code and, optionally, a quantity).
func ClaimBalance(claimLoopName, clpSegmentID string, chargeOrdinal, paymentOrdinal int, lineLoopName, casSegmentID string) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError

		for ci, claim := range loopsNamed(tx, tx.Root(), claimLoopName) {
			clp, ok := claim.Segment(clpSegmentID)
			if !ok {
				continue
			}
			charge, err := parseDecimal(clp.Scalar(chargeOrdinal))
			if err != nil {
				continue
			}
			payment, err := parseDecimal(clp.Scalar(paymentOrdinal))
			if err != nil {
				continue
			}

			adjustments := decimal.Zero
			for _, seg := range claim.Segments[casSegmentID] {
				adjustments = adjustments.Add(sumCASAmounts(seg))
			}
			for _, line := range loopsNamed(tx, claim, lineLoopName) {
				for _, seg := range line.Segments[casSegmentID] {
					adjustments = adjustments.Add(sumCASAmounts(seg))
				}
			}

			want := charge.Sub(payment)
			if !want.Equal(adjustments) {
				errs = append(errs, model.ValidationError{
					Kind: "ClaimBalance",
					Path: fmt.Sprintf("%s[%d]/%s", claimLoopName, ci, clpSegmentID),
					Message: fmt.Sprintf("charge %s - payment %s = %s, but CAS adjustments sum to %s",
						charge, payment, want, adjustments),
				})
			}
		}
		return errs
	})
}

// sumCASAmounts adds every adjustment-amount element in a CAS segment:
// ordinal 3, then every third ordinal after it (6, 9, 12, 15, 18), each
// following a reason-code element and an optional quantity element.
func sumCASAmounts(seg x12.Segment) decimal.Decimal {
	total := decimal.Zero
	for ord := 3; ord <= 18; ord += 3 {
		v := seg.Scalar(ord)
		if v == "" {
			continue
		}
		amt, err := parseDecimal(v)
		if err != nil {
			continue
		}
		total = total.Add(amt)
	}
	return total
}

// ClaimTotals checks, for every instance of claimLoopName (837
// professional loop 2300), that the CLM segment's charge amount equals
// the sum of every nested SV1 line charge.
func ClaimTotals(claimLoopName, clmSegmentID string, chargeOrdinal int, lineLoopName, sv1SegmentID string, lineChargeOrdinal int) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError

		for ci, claim := range loopsNamed(tx, tx.Root(), claimLoopName) {
			clm, ok := claim.Segment(clmSegmentID)
			if !ok {
				continue
			}
			charge, err := parseDecimal(clm.Scalar(chargeOrdinal))
			if err != nil {
				continue
			}

			sum := decimal.Zero
			for _, line := range loopsNamed(tx, claim, lineLoopName) {
				sv1, ok := line.Segment(sv1SegmentID)
				if !ok {
					continue
				}
				amt, err := parseDecimal(sv1.Scalar(lineChargeOrdinal))
				if err != nil {
					continue
				}
				sum = sum.Add(amt)
			}

			if !charge.Equal(sum) {
				errs = append(errs, model.ValidationError{
					Kind: "ClaimTotals",
					Path: fmt.Sprintf("%s[%d]/%s%02d", claimLoopName, ci, clmSegmentID, chargeOrdinal),
					Message: fmt.Sprintf("claim charge %s does not equal sum of line charges %s", charge, sum),
				})
			}
		}
		return errs
	})
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}
