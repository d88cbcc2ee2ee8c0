package framer

import (
	"io"

	"github.com/healthedi/x12/dispatch"
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/schema"
	"github.com/healthedi/x12/tokenize"
	"github.com/healthedi/x12/x12"
)

// Framer splits an interchange octet stream into closed transaction
// models, pulled lazily one at a time in the style of tokenize.Tokenizer.
type Framer struct {
	tok *tokenize.Tokenizer
	cfg config

	tx  *model.Transaction
	err error
	done bool

	gsVersion    string
	isaControl   string
	gsControl    string
	stCountInGS  int
	gsCountInISA int

	envelopeErrs []error
}

// New creates a Framer reading from r.
func New(r io.Reader, opts ...Option) *Framer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Framer{
		tok: tokenize.New(r, cfg.tokenizeOpts...),
		cfg: cfg,
	}
}

// Scan advances to the next closed transaction set. It returns false at
// EOF or on an unrecoverable error; distinguish the two with Err.
func (f *Framer) Scan() bool {
	if f.err != nil || f.done {
		return false
	}

	for f.tok.Scan() {
		seg := f.tok.Segment()
		switch seg.ID {
		case "ISA":
			f.isaControl = seg.Scalar(13)
			f.gsCountInISA = 0
		case "GS":
			f.gsControl = seg.Scalar(6)
			f.gsVersion = seg.Scalar(8)
			f.stCountInGS = 0
			f.gsCountInISA++
		case "GE":
			f.checkGE(seg)
		case "IEA":
			f.checkIEA(seg)
		case "ST":
			f.stCountInGS++
			tx, err := f.readTransaction(seg)
			if err != nil {
				f.err = err
				return false
			}
			f.tx = tx
			return true
		}
	}

	f.done = true
	if err := f.tok.Err(); err != nil {
		f.err = err
		return false
	}
	return false
}

// readTransaction consumes segments from ST through SE, dispatching
// each against the schema registered for the transaction's code and
// the functional group's version.
func (f *Framer) readTransaction(st x12.Segment) (*model.Transaction, error) {
	code := st.Scalar(1)
	version := f.gsVersion

	ts, ok := schema.Lookup(code, version)
	if !ok {
		return nil, &x12.SegmentError{SegmentID: "ST", Reason: x12.ErrUnknownTransactionVersion.Error() + ": " + code + "/" + version, Cause: x12.ErrUnknownTransactionVersion}
	}

	tx := model.New(code, version, f.tok.Delimiters())
	tx.ControlNumber = st.Scalar(2)
	tx.Root().Attach("ST", st)
	tx.SegmentCount++

	ctx := model.NewContext(tx)

	for f.tok.Scan() {
		seg := f.tok.Segment()
		tx.SegmentCount++

		if seg.ID == "SE" {
			tx.Root().Attach("SE", seg)
			declared, _ := parseInt(seg.Scalar(1))
			tx.DeclaredSegmentCount = declared
			return tx, nil
		}

		if isFooterSegment(ts, seg.ID) {
			tx.Trailer[seg.ID] = append(tx.Trailer[seg.ID], seg)
			continue
		}

		if err := dispatch.Dispatch(ctx, seg, ts); err != nil {
			return nil, err
		}
	}

	if err := f.tok.Err(); err != nil {
		return nil, err
	}
	return nil, x12.ErrTruncatedEnvelope
}

// isFooterSegment reports whether segID is one of ts's declared footer
// segments other than SE, which is always handled separately since it
// also closes the transaction.
func isFooterSegment(ts *schema.TransactionSchema, segID string) bool {
	for _, s := range ts.FooterSegments {
		if s.ID == segID && segID != "SE" {
			return true
		}
	}
	return false
}

func (f *Framer) checkGE(seg x12.Segment) {
	declared, _ := parseInt(seg.Scalar(1))
	if declared != f.stCountInGS {
		f.envelopeErrs = append(f.envelopeErrs, &EnvelopeError{
			Segment: "GE",
			Reason:  "declared transaction count does not match transactions seen in group",
		})
	}
	if seg.Scalar(2) != f.gsControl {
		f.envelopeErrs = append(f.envelopeErrs, &EnvelopeError{
			Segment: "GE",
			Reason:  "control number does not match matching GS06",
		})
	}
}

func (f *Framer) checkIEA(seg x12.Segment) {
	declared, _ := parseInt(seg.Scalar(1))
	if declared != f.gsCountInISA {
		f.envelopeErrs = append(f.envelopeErrs, &EnvelopeError{
			Segment: "IEA",
			Reason:  "declared group count does not match groups seen in interchange",
		})
	}
	if seg.Scalar(2) != f.isaControl {
		f.envelopeErrs = append(f.envelopeErrs, &EnvelopeError{
			Segment: "IEA",
			Reason:  "control number does not match matching ISA13",
		})
	}
}

// Transaction returns the transaction produced by the most recent
// successful Scan.
func (f *Framer) Transaction() *model.Transaction {
	return f.tx
}

// Err returns the first unrecoverable error encountered.
func (f *Framer) Err() error {
	return f.err
}

// EnvelopeErrors returns every envelope-level count or control-number
// mismatch observed so far. Unlike Err, these do not stop the scan.
func (f *Framer) EnvelopeErrors() []error {
	out := make([]error, len(f.envelopeErrs))
	copy(out, f.envelopeErrs)
	return out
}

func parseInt(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, &x12.ElementTypeError{Raw: s, Expected: "integer"}
		}
		n = n*10 + int(c-'0')
	}
	if s == "" {
		return 0, &x12.ElementTypeError{Raw: s, Expected: "integer"}
	}
	return n, nil
}
