package report

import (
	"testing"
	"time"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

func fixedTime() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestBuildValidTransaction(t *testing.T) {
	tx := model.New("270", "005010X279A1", x12.DefaultDelimiters())
	tx.ControlNumber = "0001"

	b := NewBuilder(WithTimeFunc(fixedTime))
	rep, err := b.Build(tx, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !rep.Valid {
		t.Error("Valid = false, want true")
	}
	if rep.GeneratedAt != fixedTime() {
		t.Errorf("GeneratedAt = %v, want %v", rep.GeneratedAt, fixedTime())
	}
}

func TestBuildInvalidTransactionCarriesErrors(t *testing.T) {
	tx := model.New("270", "005010X279A1", x12.DefaultDelimiters())
	errs := []model.ValidationError{{Kind: "SegmentCountMismatch"}}

	b := NewBuilder(WithTimeFunc(fixedTime))
	rep, err := b.Build(tx, errs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rep.Valid {
		t.Error("Valid = true, want false")
	}
	if len(rep.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(rep.Errors))
	}
}

func TestBuildNilTransaction(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(nil, nil); err == nil {
		t.Fatal("Build(nil) error = nil, want ErrNilTransaction")
	}
}
