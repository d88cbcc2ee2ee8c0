package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/validate"
)

func init() {
	loop2220d := &LoopSchema{
		Name:     "loop_2220d",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "SVC"}, Required: true}, {Schema: SegmentSchema{ID: "STC", Elements: []ElementSchema{{Name: "StatusCode", Type: TypeID, Required: true}}}, Required: true, Repeating: true}, {Schema: SegmentSchema{ID: "DTP"}, Repeating: true}},
	}
	loop2200d := &LoopSchema{
		Name: "loop_2200d",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "TRN"}, Required: true, Repeating: true},
			{Schema: SegmentSchema{ID: "STC", Elements: []ElementSchema{{Name: "StatusCode", Type: TypeID, Required: true}}}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2220d, Min: 0, Max: 0}},
	}
	loop2000d := &LoopSchema{
		Name:     "loop_2000d",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}},
		Children: []ChildSlot{{Loop: loop2200d, Min: 1, Max: 0}},
	}
	loop2100c := &LoopSchema{
		Name:     "loop_2100c",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "NM1"}, Required: true}, {Schema: SegmentSchema{ID: "REF"}, Repeating: true}},
	}
	loop2000c := &LoopSchema{
		Name:     "loop_2000c",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}},
		Children: []ChildSlot{
			{Loop: loop2100c, Min: 1, Max: 1},
			{Loop: loop2000d, Min: 1, Max: 0},
		},
	}
	loop2100b := &LoopSchema{
		Name:     "loop_2100b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "NM1"}, Required: true}},
	}
	loop2000b := &LoopSchema{
		Name:     "loop_2000b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}},
		Children: []ChildSlot{
			{Loop: loop2100b, Min: 1, Max: 1},
			{Loop: loop2000c, Min: 1, Max: 0},
		},
	}
	loop2100a := &LoopSchema{
		Name:     "loop_2100a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "NM1"}, Required: true}},
	}
	loop2000a := &LoopSchema{
		Name:     "loop_2000a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "HL"}, Required: true}},
		Children: []ChildSlot{
			{Loop: loop2100a, Min: 1, Max: 1},
			{Loop: loop2000b, Min: 1, Max: 0},
		},
	}
	root := &LoopSchema{
		Name: "header",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "ST"}, Required: true},
			{Schema: SegmentSchema{ID: "BHT"}, Required: true},
		},
		Children: []ChildSlot{{Loop: loop2000a, Min: 1, Max: 0}},
	}

	ts := &TransactionSchema{
		Code:    "277",
		Version: "005010X212",
		Root:    root,
		Rules: []Rule{
			{SegmentID: "HL", Condition: "level_code=20", Predicate: HLLevelCode("20"), Action: HLAction("loop_2000a")},
			{SegmentID: "HL", Condition: "level_code=21", Predicate: HLLevelCode("21"), Action: HLAction("loop_2000b")},
			{SegmentID: "HL", Condition: "level_code=19", Predicate: HLLevelCode("19"), Action: HLAction("loop_2000c")},
			{SegmentID: "HL", Condition: "level_code=22", Predicate: HLLevelCode("22"), Action: HLAction("loop_2000d")},
			{SegmentID: "NM1", Condition: "entity=PR", Predicate: nm1EntityCode("PR"), Action: OpenUnderCurrent("loop_2100a")},
			{SegmentID: "NM1", Condition: "entity=41", Predicate: nm1EntityCode("41"), Action: OpenUnderCurrent("loop_2100b")},
			{SegmentID: "NM1", Condition: "entity=1P", Predicate: nm1EntityCode("1P"), Action: OpenUnderCurrent("loop_2100c")},
			{SegmentID: "TRN", Condition: "opens claim loop", Action: OpenUnderCurrent("loop_2200d")},
			{SegmentID: "SVC", Condition: "opens service-line loop", Action: OpenUnderCurrent("loop_2220d")},
		},
		Validators: []model.Validator{
			validate.EnvelopeCount(),
			validate.HLParentage(),
			validate.HLChain(map[string]string{"21": "20", "19": "21", "22": "19"}),
			validate.HLChildCode(),
		},
	}
	Register(ts)
}
