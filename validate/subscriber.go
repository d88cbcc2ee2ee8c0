package validate

import (
	"fmt"

	"github.com/healthedi/x12/model"
)

// SubscriberAsPatient checks that every HL at hlLevelCode with child_code
// "0" (meaning the subscriber is also the patient, so no dependent loop
// follows) has a non-empty name on the loop's identified NM1 segment at
// nameOrdinal. It is parameterized rather than hard-coded to one
// transaction because 270/271/276/277/834 each place the subscriber NM1
// in a different named loop.
func SubscriberAsPatient(hlLevelCode, nm1LoopName, nm1SegmentID string, nameOrdinal int) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError

		for _, hl := range tx.HLRecords {
			if hl.LevelCode != hlLevelCode || hl.ChildCode != "0" {
				continue
			}
			loop := tx.Loop(hl.LoopIndex)
			if loop == nil {
				continue
			}

			nm1Loops := loopsNamed(tx, loop, nm1LoopName)
			if len(nm1Loops) == 0 {
				errs = append(errs, model.ValidationError{
					Kind:    "SubscriberAsPatient",
					Path:    fmt.Sprintf("HL[%s]/%s", hl.ID, nm1LoopName),
					Message: fmt.Sprintf("HL %s has child_code 0 but loop %s is missing", hl.ID, nm1LoopName),
				})
				continue
			}

			for _, nl := range nm1Loops {
				seg, ok := nl.Segment(nm1SegmentID)
				if !ok {
					continue
				}
				name, _ := seg.Get(nameOrdinal)
				if name.Scalar() == "" {
					errs = append(errs, model.ValidationError{
						Kind:    "SubscriberAsPatient",
						Path:    fmt.Sprintf("HL[%s]/%s/%s%02d", hl.ID, nm1LoopName, nm1SegmentID, nameOrdinal),
						Message: fmt.Sprintf("HL %s declares subscriber as patient but %s has no name", hl.ID, nm1SegmentID),
					})
				}
			}
		}
		return errs
	})
}

// loopsNamed returns every descendant loop of root (root included) whose
// Name equals name, found by walking the child-index slots rather than
// scanning the whole transaction arena, so a name shared by loops outside
// root's subtree is not mistaken for root's own children.
func loopsNamed(tx *model.Transaction, root *model.Loop, name string) []*model.Loop {
	var out []*model.Loop
	var walk func(l *model.Loop)
	walk = func(l *model.Loop) {
		if l.Name == name {
			out = append(out, l)
		}
		for _, childName := range l.ChildNames() {
			for _, idx := range l.ChildIndexes(childName) {
				if child := tx.Loop(idx); child != nil {
					walk(child)
				}
			}
		}
	}
	walk(root)
	return out
}
