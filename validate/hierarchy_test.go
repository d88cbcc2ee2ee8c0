package validate

import (
	"testing"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

func newHLTx() *model.Transaction {
	return model.New("270", "005010X279A1", x12.DefaultDelimiters())
}

func TestHLParentageValidChain(t *testing.T) {
	tx := newHLTx()
	tx.HLRecords = []model.HLRecord{
		{ID: "1", ParentID: "", LevelCode: "20", ChildCode: "1"},
		{ID: "2", ParentID: "1", LevelCode: "21", ChildCode: "0"},
	}
	if errs := HLParentage().Validate(tx); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want none", errs)
	}
}

func TestHLParentageUnknownParent(t *testing.T) {
	tx := newHLTx()
	tx.HLRecords = []model.HLRecord{
		{ID: "1", ParentID: "99", LevelCode: "21", ChildCode: "0"},
	}
	errs := HLParentage().Validate(tx)
	found := false
	for _, e := range errs {
		if e.Kind == "HLParentage" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Validate() = %v, want an HLParentage violation", errs)
	}
}

func TestHLChainEnforcesLevelCodeNesting(t *testing.T) {
	tx := newHLTx()
	tx.HLRecords = []model.HLRecord{
		{ID: "1", ParentID: "", LevelCode: "20", ChildCode: "1"},
		{ID: "2", ParentID: "1", LevelCode: "22", ChildCode: "0"}, // should be 21
	}
	errs := HLChain(map[string]string{"21": "20", "22": "21"}).Validate(tx)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want 1 violation", errs)
	}
}

func TestHLChildCodeDetectsMissingDescendant(t *testing.T) {
	tx := newHLTx()
	tx.HLRecords = []model.HLRecord{
		{ID: "1", ParentID: "", LevelCode: "20", ChildCode: "1"},
	}
	errs := HLChildCode().Validate(tx)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want 1 violation", errs)
	}
}

func TestHLChildCodeDetectsUnexpectedDescendant(t *testing.T) {
	tx := newHLTx()
	tx.HLRecords = []model.HLRecord{
		{ID: "1", ParentID: "", LevelCode: "20", ChildCode: "0"},
		{ID: "2", ParentID: "1", LevelCode: "21", ChildCode: "0"},
	}
	errs := HLChildCode().Validate(tx)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want 1 violation", errs)
	}
}
