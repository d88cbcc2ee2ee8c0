package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/validate"
)

func init() {
	loop2110 := &LoopSchema{
		Name: "loop_2110",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "SVC", Elements: []ElementSchema{
				{Name: "ProcedureCode", Type: TypeAN, Required: true},
				{Name: "ChargeAmount", Type: TypeDecimal, Required: true},
				{Name: "PaidAmount", Type: TypeDecimal, Required: true},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "DTM"}, Repeating: true},
			{Schema: SegmentSchema{ID: "CAS"}, Repeating: true},
			{Schema: SegmentSchema{ID: "AMT"}, Repeating: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
		},
	}
	loop2100 := &LoopSchema{
		Name: "loop_2100",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "CLP", Elements: []ElementSchema{
				{Name: "ClaimSubmitterID", Type: TypeAN, Required: true},
				{Name: "StatusCode", Type: TypeID, Required: true},
				{Name: "ChargeAmount", Type: TypeDecimal, Required: true},
				{Name: "PaidAmount", Type: TypeDecimal, Required: true},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "NM1"}, Repeating: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTM"}, Repeating: true},
			{Schema: SegmentSchema{ID: "AMT"}, Repeating: true},
			{Schema: SegmentSchema{ID: "CAS"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2110, Min: 0, Max: 0}},
	}
	loop2000 := &LoopSchema{
		Name:     "loop_2000",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "LX", Elements: []ElementSchema{{Name: "AssignedNumber", Type: TypeNumeric, Required: true}}}, Required: true}},
		Children: []ChildSlot{{Loop: loop2100, Min: 1, Max: 0}},
	}
	loop1000b := &LoopSchema{
		Name:     "loop_1000b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}, {Schema: SegmentSchema{ID: "REF"}, Repeating: true}},
	}
	loop1000a := &LoopSchema{
		Name:     "loop_1000a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}},
	}
	root := &LoopSchema{
		Name: "header",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "ST"}, Required: true},
			{Schema: SegmentSchema{ID: "BPR"}, Required: true},
			{Schema: SegmentSchema{ID: "TRN"}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTM"}, Repeating: true},
		},
		Children: []ChildSlot{
			{Loop: loop1000a, Min: 1, Max: 1},
			{Loop: loop1000b, Min: 1, Max: 1},
			{Loop: loop2000, Min: 0, Max: 0},
		},
		// PLB carries trailing provider-level adjustments, positioned
		// before SE but outside any named loop.
	}

	ts := &TransactionSchema{
		Code:    "835",
		Version: "005010X221A1",
		Root:    root,
		FooterSegments: []SegmentSchema{
			{ID: "PLB"},
			{ID: "SE"},
		},
		Rules: []Rule{
			{SegmentID: "N1", Condition: "entity=PR", Predicate: nm1EntityCode("PR"), Action: OpenUnderRoot("loop_1000a")},
			{SegmentID: "N1", Condition: "entity=PE", Predicate: nm1EntityCode("PE"), Action: OpenUnderRoot("loop_1000b")},
			{SegmentID: "LX", Condition: "opens header-number loop", Action: OpenUnderLXAndMark("loop_2000")},
			{SegmentID: "CLP", Condition: "opens claim-payment loop", Action: OpenUnderLX("loop_2100")},
			{SegmentID: "SVC", Condition: "opens service-payment loop", Action: OpenUnderCurrent("loop_2110")},
		},
		Validators: []model.Validator{
			validate.EnvelopeCount(),
			validate.LXUniqueness("loop_2000", "LX", 1),
			validate.ClaimBalance("loop_2100", "CLP", 3, 4, "loop_2110", "CAS"),
		},
	}
	Register(ts)
}
