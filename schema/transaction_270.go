package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/validate"
	"github.com/healthedi/x12/x12"
)

func init() {
	loop2110c := &LoopSchema{
		Name: "loop_2110c",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "EQ", Elements: []ElementSchema{{Name: "ServiceTypeCode", Type: TypeID, Required: true}}}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
		},
	}
	loop2100c := &LoopSchema{
		Name: "loop_2100c",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "NM1", Elements: []ElementSchema{
				{Name: "EntityIDCode", Type: TypeID, Required: true},
				{Name: "EntityTypeQualifier", Type: TypeID, Required: true},
				{Name: "LastName", Type: TypeAN},
				{Name: "FirstName", Type: TypeAN},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DMG"}},
		},
		Children: []ChildSlot{{Loop: loop2110c, Min: 1, Max: 0}},
	}
	loop2000c := &LoopSchema{
		Name: "loop_2000c",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "HL", Elements: []ElementSchema{
				{Name: "HLID", Type: TypeNumeric, Required: true},
				{Name: "ParentID", Type: TypeNumeric},
				{Name: "LevelCode", Type: TypeID, Required: true},
				{Name: "ChildCode", Type: TypeID, Required: true},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "TRN"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2100c, Min: 1, Max: 1}},
	}
	loop2100b := &LoopSchema{
		Name: "loop_2100b",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "NM1"}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
		},
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
		Name: "loop_2100a",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "NM1"}, Required: true},
			{Schema: SegmentSchema{ID: "PER"}, Repeating: true},
		},
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
		Code:    "270",
		Version: "005010X279A1",
		Root:    root,
		Rules: []Rule{
			{SegmentID: "HL", Condition: "level_code=20", Predicate: HLLevelCode("20"), Action: HLAction("loop_2000a")},
			{SegmentID: "HL", Condition: "level_code=21", Predicate: HLLevelCode("21"), Action: HLAction("loop_2000b")},
			{SegmentID: "HL", Condition: "level_code=22", Predicate: HLLevelCode("22"), Action: HLAction("loop_2000c")},
			{SegmentID: "NM1", Condition: "entity=PR", Predicate: nm1EntityCode("PR"), Action: OpenUnderCurrent("loop_2100a")},
			{SegmentID: "NM1", Condition: "entity=1P", Predicate: nm1EntityCode("1P"), Action: OpenUnderCurrent("loop_2100b")},
			{SegmentID: "NM1", Condition: "entity=IL", Predicate: nm1EntityCode("IL"), Action: OpenUnderCurrent("loop_2100c")},
			{SegmentID: "EQ", Condition: "opens service-type loop", Action: OpenUnderCurrent("loop_2110c")},
		},
		Validators: []model.Validator{
			validate.EnvelopeCount(),
			validate.HLParentage(),
			validate.HLChain(map[string]string{"21": "20", "22": "21"}),
			validate.HLChildCode(),
			validate.SubscriberAsPatient("22", "loop_2100c", "NM1", 4),
		},
	}
	Register(ts)
}

// nm1EntityCode returns a predicate matching an NM1 segment whose
// NM101 (entity identifier code) equals code — the field HIPAA 270/271
// uses to tell an Information Source, Information Receiver and
// Subscriber NM1 apart, since dispatch rules see only the segment
// itself and not the loop currently in scope.
func nm1EntityCode(code string) func(seg x12.Segment) bool {
	return func(seg x12.Segment) bool {
		return seg.Scalar(1) == code
	}
}
