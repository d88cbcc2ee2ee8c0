package validate

import (
	"testing"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

func TestEnvelopeCountMatches(t *testing.T) {
	tx := model.New("270", "005010X279A1", x12.DefaultDelimiters())
	tx.SegmentCount = 17
	tx.DeclaredSegmentCount = 17
	if errs := EnvelopeCount().Validate(tx); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want none", errs)
	}
}

func TestEnvelopeCountMismatch(t *testing.T) {
	tx := model.New("270", "005010X279A1", x12.DefaultDelimiters())
	tx.SegmentCount = 17
	tx.DeclaredSegmentCount = 16
	errs := EnvelopeCount().Validate(tx)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want 1 error", errs)
	}
	if errs[0].Kind != "SegmentCountMismatch" {
		t.Errorf("Kind = %q", errs[0].Kind)
	}
}
