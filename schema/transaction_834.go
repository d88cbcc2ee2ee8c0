package schema

import (
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/validate"
)

func init() {
	loop2300 := &LoopSchema{
		Name: "loop_2300",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "HD", Elements: []ElementSchema{{Name: "MaintenanceTypeCode", Type: TypeID, Required: true}}}, Required: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
			{Schema: SegmentSchema{ID: "AMT"}, Repeating: true},
		},
	}
	loop2100 := &LoopSchema{
		Name: "loop_2100",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "NM1", Elements: []ElementSchema{
				{Name: "EntityIDCode", Type: TypeID, Required: true},
				{Name: "EntityTypeQualifier", Type: TypeID, Required: true},
				{Name: "LastName", Type: TypeAN},
				{Name: "FirstName", Type: TypeAN},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "DMG"}},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2300, Min: 1, Max: 0}},
	}
	loop2000 := &LoopSchema{
		Name: "loop_2000",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "INS", Elements: []ElementSchema{
				{Name: "SubscriberIndicator", Type: TypeID, Required: true},
				{Name: "RelationshipCode", Type: TypeID, Required: true},
				{Name: "MaintenanceTypeCode", Type: TypeID, Required: true},
				{Name: "MaintenanceReasonCode", Type: TypeID},
			}}, Required: true},
			{Schema: SegmentSchema{ID: "REF"}, Repeating: true},
			{Schema: SegmentSchema{ID: "DTP"}, Repeating: true},
		},
		Children: []ChildSlot{{Loop: loop2100, Min: 1, Max: 1}},
	}
	loop1000b := &LoopSchema{
		Name:     "loop_1000b",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}},
	}
	loop1000a := &LoopSchema{
		Name:     "loop_1000a",
		Segments: []SegmentSlot{{Schema: SegmentSchema{ID: "N1"}, Required: true}},
	}
	root := &LoopSchema{
		Name: "header",
		Segments: []SegmentSlot{
			{Schema: SegmentSchema{ID: "ST"}, Required: true},
			{Schema: SegmentSchema{ID: "BGN"}, Required: true},
		},
		Children: []ChildSlot{
			{Loop: loop1000a, Min: 1, Max: 1},
			{Loop: loop1000b, Min: 1, Max: 1},
			{Loop: loop2000, Min: 1, Max: 0},
		},
	}

	ts := &TransactionSchema{
		Code:    "834",
		Version: "005010X220A1",
		Root:    root,
		Rules: []Rule{
			{SegmentID: "N1", Condition: "entity=P5", Predicate: nm1EntityCode("P5"), Action: OpenUnderRoot("loop_1000a")},
			{SegmentID: "N1", Condition: "entity=IN", Predicate: nm1EntityCode("IN"), Action: OpenUnderRoot("loop_1000b")},
			{SegmentID: "INS", Condition: "opens member loop", Action: OpenUnderRoot("loop_2000")},
			{SegmentID: "NM1", Condition: "opens member name loop", Action: OpenUnderCurrent("loop_2100")},
			{SegmentID: "HD", Condition: "opens coverage loop", Action: OpenUnderCurrent("loop_2300")},
		},
		Validators: []model.Validator{
			validate.EnvelopeCount(),
		},
	}
	Register(ts)
}
