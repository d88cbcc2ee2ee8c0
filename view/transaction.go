package view

import "github.com/healthedi/x12/model"

// Delimiters is the JSON rendering of x12.Delimiters, included when the
// CLI's -d flag is set; the HTTP shim never includes it.
type Delimiters struct {
	Element    string `json:"element"`
	Repetition string `json:"repetition"`
	Component  string `json:"component"`
	Terminator string `json:"terminator"`
}

// Loop is the JSON rendering of one model.Loop: its own segments, keyed
// by segment ID, plus its named child loops.
type Loop struct {
	Name     string              `json:"name"`
	Segments map[string][]Segment `json:"segments,omitempty"`
	Children map[string][]Loop   `json:"children,omitempty"`
}

// Transaction is the JSON rendering of one closed model.Transaction,
// optionally carrying its validation errors and recovered delimiters.
type Transaction struct {
	Code                 string                  `json:"code"`
	Version              string                  `json:"version"`
	ControlNumber        string                  `json:"control_number"`
	SegmentCount         int                     `json:"segment_count"`
	DeclaredSegmentCount int                     `json:"declared_segment_count"`
	Delimiters           *Delimiters             `json:"delimiters,omitempty"`
	Root                 Loop                    `json:"root"`
	Errors               []model.ValidationError `json:"errors,omitempty"`
}

// FromTransaction renders tx (plus its validation errors, if any) as a
// Transaction view. includeDelimiters corresponds to the CLI's -d flag.
func FromTransaction(tx *model.Transaction, errs []model.ValidationError, includeDelimiters bool, opts Options) Transaction {
	out := Transaction{
		Code:                 tx.Code,
		Version:              tx.Version,
		ControlNumber:        tx.ControlNumber,
		SegmentCount:         tx.SegmentCount,
		DeclaredSegmentCount: tx.DeclaredSegmentCount,
		Root:                 fromLoop(tx.Root(), tx, opts),
		Errors:               errs,
	}
	if includeDelimiters {
		d := tx.Delims
		out.Delimiters = &Delimiters{
			Element:    string(d.Element),
			Repetition: string(d.Repetition),
			Component:  string(d.Component),
			Terminator: string(d.Terminator),
		}
	}
	return out
}

func fromLoop(l *model.Loop, tx *model.Transaction, opts Options) Loop {
	out := Loop{Name: l.Name}

	for _, seg := range l.Attached() {
		sv := FromSegment(seg, tx.Delims, opts)
		if opts.ExcludeUnset && len(sv.Elements) == 0 && len(seg.Elements) > 0 {
			continue
		}
		if out.Segments == nil {
			out.Segments = make(map[string][]Segment)
		}
		out.Segments[seg.ID] = append(out.Segments[seg.ID], sv)
	}

	for _, name := range l.ChildNames() {
		for _, idx := range l.ChildIndexes(name) {
			child := tx.Loop(idx)
			if child == nil {
				continue
			}
			cv := fromLoop(child, tx, opts)
			if opts.ExcludeUnset && len(cv.Segments) == 0 && len(cv.Children) == 0 {
				continue
			}
			if out.Children == nil {
				out.Children = make(map[string][]Loop)
			}
			out.Children[name] = append(out.Children[name], cv)
		}
	}

	return out
}
