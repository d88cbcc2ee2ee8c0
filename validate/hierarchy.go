package validate

import (
	"fmt"

	"github.com/healthedi/x12/model"
)

// HLParentage checks that every non-root HL's parent_id refers to an
// earlier HL's id, and that HL ids strictly increase from 1.
func HLParentage() model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError
		seen := map[string]model.HLRecord{}

		for i, hl := range tx.HLRecords {
			wantID := fmt.Sprintf("%d", i+1)
			if hl.ID != wantID {
				errs = append(errs, model.ValidationError{
					Kind:    "HLSequence",
					Path:    fmt.Sprintf("HL[%d]", i),
					Message: fmt.Sprintf("expected HL id %q, got %q", wantID, hl.ID),
				})
			}

			if hl.ParentID != "" {
				if _, ok := seen[hl.ParentID]; !ok {
					errs = append(errs, model.ValidationError{
						Kind:    "HLParentage",
						Path:    fmt.Sprintf("HL[%d]", i),
						Message: fmt.Sprintf("HL %s references parent_id %s with no earlier HL", hl.ID, hl.ParentID),
					})
				}
			}
			seen[hl.ID] = hl
		}
		return errs
	})
}

// HLChain checks that each HL's level_code follows the transaction's
// prescribed nesting, given parentOf mapping a level code to the level
// code its parent HL must carry. A level code absent from parentOf is
// treated as a root level and is not checked.
func HLChain(parentOf map[string]string) model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError
		byID := make(map[string]model.HLRecord, len(tx.HLRecords))
		for _, hl := range tx.HLRecords {
			byID[hl.ID] = hl
		}

		for i, hl := range tx.HLRecords {
			wantParentLevel, constrained := parentOf[hl.LevelCode]
			if !constrained || hl.ParentID == "" {
				continue
			}
			parent, ok := byID[hl.ParentID]
			if !ok {
				continue // already reported by HLParentage
			}
			if parent.LevelCode != wantParentLevel {
				errs = append(errs, model.ValidationError{
					Kind: "HLParentage",
					Path: fmt.Sprintf("HL[%d]", i),
					Message: fmt.Sprintf("HL %s (level %s) expects parent level %s, got %s",
						hl.ID, hl.LevelCode, wantParentLevel, parent.LevelCode),
				})
			}
		}
		return errs
	})
}

// HLChildCode checks that an HL declaring child_code "1" has at least
// one descendant HL, and one declaring "0" has none.
func HLChildCode() model.Validator {
	return model.ValidatorFunc(func(tx *model.Transaction) []model.ValidationError {
		var errs []model.ValidationError
		hasChild := map[string]bool{}
		for _, hl := range tx.HLRecords {
			if hl.ParentID != "" {
				hasChild[hl.ParentID] = true
			}
		}

		for i, hl := range tx.HLRecords {
			switch hl.ChildCode {
			case "1":
				if !hasChild[hl.ID] {
					errs = append(errs, model.ValidationError{
						Kind:    "HLChildCode",
						Path:    fmt.Sprintf("HL[%d]", i),
						Message: fmt.Sprintf("HL %s declares child_code 1 but has no descendant HL", hl.ID),
					})
				}
			case "0":
				if hasChild[hl.ID] {
					errs = append(errs, model.ValidationError{
						Kind:    "HLChildCode",
						Path:    fmt.Sprintf("HL[%d]", i),
						Message: fmt.Sprintf("HL %s declares child_code 0 but has a descendant HL", hl.ID),
					})
				}
			}
		}
		return errs
	})
}
