package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/validate"
)

func init() {
	loop2400 := &LoopSchema{
		Name: "loop_2400",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "LX", Elements: []ElementSchema{{Name: "AssignedNumber", Type: TypeNumeric, Required: true}}}, Required: true},
			{Schema: SegmentSchema{ID: "SV1", Elements: []ElementSchema{
				{Name: "ProcedureComposite", Type: TypeAN, Required: true},
				{Name: "LineChargeAmount", Type: TypeDecimal, Required: true},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
		},
	}
	loop2300 := &LoopSchema{
		Name: "loop_2300",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "CLM", Elements: []ElementSchema{
				{Name: "ClaimSubmitterID", Type: TypeAN, Required: true},
				{Name: "ChargeAmount", Type: TypeDecimal, Required: true},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
			{Schema: SegmentSchema{ID: "HI"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2400, Min: 1, Max: 0}},
	}
	loop2010ba := &LoopSchema{
		Name:     "loop_2010ba",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "NM1"}, Required: true}, {Schema: SegmentSchema{ID: "N3"}}, {Schema: SegmentSchema{ID: "N4"}}},
	}
	loop2000b := &LoopSchema{
		Name:     "loop_2000b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}, {Schema: SegmentSchema{ID: "SBR"}, Required: true}},
		Children: []ChildSlot{
			{Loop: loop2010ba, Min: 1, Max: 1},
			{Loop: loop2300, Min: 1, Max: 0},
		},
	}
	loop2010aa := &LoopSchema{
		Name:     "loop_2010aa",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "NM1"}, Required: true}, {Schema: SegmentSchema{ID: "N3"}}, {Schema: SegmentSchema{ID: "N4"}}},
	}
	loop2000a := &LoopSchema{
		Name:     "loop_2000a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}, {Schema: SegmentSchema{ID: "PRV"}, Repeating: true}},
		Children: []ChildSlot{
			{Loop: loop2010aa, Min: 1, Max: 1},
			{Loop: loop2000b, Min: 1, Max: 0},
		},
	}
	loop1000b := &LoopSchema{
		Name:     "loop_1000b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}},
	}
	loop1000a := &LoopSchema{
		Name:     "loop_1000a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}, {Schema: SegmentSchema{ID: "PER"}, Repeating: true}},
	}
	root := &LoopSchema{
		Name: "header",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "ST"}, Required: true},
			{Schema: SegmentSchema{ID: "BHT"}, Required: true},
		},
		Children: []ChildSlot{
			{Loop: loop1000a, Min: 1, Max: 1},
			{Loop: loop1000b, Min: 1, Max: 1},
			{Loop: loop2000a, Min: 1, Max: 0},
		},
	}

	ts := &TransactionSchema{
		Code:    "837P",
		Version: "005010X222A1",
		Root:    root,
		Rules: []Rule{
			{SegmentID: "N1", Condition: "entity=41", Predicate: nm1EntityCode("41"), Action: OpenUnderRoot("loop_1000a")},
			{SegmentID: "N1", Condition: "entity=40", Predicate: nm1EntityCode("40"), Action: OpenUnderRoot("loop_1000b")},
			{SegmentID: "HL", Condition: "level_code=20", Predicate: HLLevelCode("20"), Action: HLAction("loop_2000a")},
			{SegmentID: "HL", Condition: "level_code=22", Predicate: HLLevelCode("22"), Action: HLAction("loop_2000b")},
			{SegmentID: "NM1", Condition: "entity=85", Predicate: nm1EntityCode("85"), Action: OpenUnderCurrent("loop_2010aa")},
			{SegmentID: "NM1", Condition: "entity=IL", Predicate: nm1EntityCode("IL"), Action: OpenUnderCurrent("loop_2010ba")},
			{SegmentID: "CLM", Condition: "opens claim loop", Action: OpenUnderHL("loop_2300")},
			{SegmentID: "LX", Condition: "opens service-line loop", Action: OpenUnderCurrent("loop_2400")},
		},
		Validators: []model.Validator{
			validate.EnvelopeCount(),
			validate.HLParentage(),
			validate.HLChain(map[string]string{"22": "20"}),
			validate.HLChildCode(),
			validate.ClaimTotals("loop_2300", "CLM", 2, "loop_2400", "SV1", 2),
		},
	}
	Register(ts)
}
