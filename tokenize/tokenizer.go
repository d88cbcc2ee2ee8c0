package tokenize

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/healthedi/x12/x12"
)

// ErrEmptySegment is returned by Scan in strict-whitespace mode when an
// empty segment (consecutive terminators) is encountered.
var ErrEmptySegment = errors.New("tokenize: empty segment not allowed in strict mode")

// Tokenizer emits a lazy sequence of x12.Segment values pulled from an
// io.Reader, in the style of bufio.Scanner: call Scan in a loop, read
// Segment after each true result, check Err once Scan returns false.
type Tokenizer struct {
	r      *bufio.Reader
	cfg    config
	delims x12.Delimiters
	probed bool
	seg    x12.Segment
	err    error
	isaRaw []byte // ISA's raw content, captured while probing and emitted as Scan's first segment
}

// New creates a Tokenizer reading from r. Delimiters are recovered from
// the first 106 octets on the first call to Scan.
func New(r io.Reader, opts ...Option) *Tokenizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tokenizer{
		r:   bufio.NewReaderSize(r, cfg.chunkSize),
		cfg: cfg,
	}
}

// Delimiters returns the delimiters recovered from the ISA header. Valid
// only after the first successful Scan.
func (t *Tokenizer) Delimiters() x12.Delimiters {
	return t.delims
}

// Scan advances to the next segment. It returns false at EOF or on
// error; distinguish the two with Err.
func (t *Tokenizer) Scan() bool {
	if t.err != nil {
		return false
	}

	if !t.probed {
		if err := t.probe(); err != nil {
			t.err = err
			return false
		}
		// ISA's own terminator was already consumed reading the fixed-width
		// header, so it is a complete segment on its own — emit it directly
		// instead of feeding it into readSegment's scan-for-terminator loop,
		// which would otherwise read straight through into GS looking for a
		// terminator that is already gone.
		seg, perr := parseSegment(t.isaRaw, t.delims)
		if perr != nil {
			t.err = perr
			return false
		}
		t.seg = seg
		return true
	}

	raw, err := t.readSegment()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			t.err = err
		}
		return false
	}
	if raw == nil {
		return false
	}

	seg, perr := parseSegment(raw, t.delims)
	if perr != nil {
		t.err = perr
		return false
	}
	t.seg = seg
	return true
}

// Segment returns the segment produced by the most recent successful Scan.
func (t *Tokenizer) Segment() x12.Segment {
	return t.seg
}

// Err returns the first non-EOF error encountered.
func (t *Tokenizer) Err() error {
	return t.err
}

// probe reads exactly the 106-octet ISA header and recovers delimiters,
// retaining the header's content (minus its terminator) so Scan can
// emit ISA as its own segment.
func (t *Tokenizer) probe() error {
	header := make([]byte, 106)
	if _, err := io.ReadFull(t.r, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return x12.ErrMalformedInterchange
		}
		return err
	}

	d, err := x12.Probe(header)
	if err != nil {
		return err
	}
	t.delims = d
	t.probed = true
	// header[105] is itself the segment terminator (ISA is fixed-width);
	// strip it so isaRaw holds only ISA's content.
	t.isaRaw = header[:105]
	return nil
}

// readSegment reads up to and including the next terminator, returning
// the segment's raw bytes without the terminator. Inter-segment
// whitespace (CR/LF) is absorbed unless strict mode is enabled.
func (t *Tokenizer) readSegment() ([]byte, error) {
	var buf bytes.Buffer

	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(bytes.TrimSpace(buf.Bytes())) > 0 || (t.cfg.strictWhitespace && buf.Len() > 0) {
					return nil, x12.ErrTruncatedSegment
				}
				return nil, io.EOF
			}
			return nil, err
		}

		if b == t.delims.Terminator {
			if t.cfg.strictWhitespace && len(bytes.TrimLeft(buf.Bytes(), " \t\r\n\v\f")) != buf.Len() {
				return nil, &x12.SegmentError{SegmentID: "?", Reason: "whitespace between segments not allowed in strict mode", Cause: x12.ErrTruncatedSegment}
			}
			trimmed := bytes.TrimSpace(buf.Bytes())
			if len(trimmed) == 0 {
				if t.cfg.strictWhitespace {
					return nil, ErrEmptySegment
				}
				buf.Reset()
				continue
			}
			return trimmed, nil
		}

		buf.WriteByte(b)
		if buf.Len() > t.cfg.maxSegmentLength {
			return nil, &x12.SegmentError{SegmentID: "?", Reason: "segment exceeds max length"}
		}
	}
}

// parseSegment splits raw segment bytes into an x12.Segment.
func parseSegment(raw []byte, d x12.Delimiters) (x12.Segment, error) {
	id, rest := splitSegmentID(raw, d.Element)
	if len(id) < 2 || len(id) > 3 {
		return x12.Segment{}, &x12.SegmentError{SegmentID: string(id), Reason: "segment id must be 2-3 letters"}
	}

	seg := x12.NewSegment(string(id), d)
	if rest == nil {
		return seg, nil
	}

	fields := bytes.Split(rest, []byte{d.Element})

	// ISA's own fields carry the delimiter characters themselves (e.g.
	// ISA11 *is* the repetition separator); splitting them as ordinary
	// repeating/composite elements would shred that literal value. Every
	// other segment uses the delimiters normally.
	if seg.ID == "ISA" {
		for _, f := range fields {
			seg.Append(x12.NewScalar(string(f)))
		}
		return seg, nil
	}

	for _, f := range fields {
		seg.Append(x12.ParseElement(string(f), d))
	}
	return seg, nil
}

// splitSegmentID finds the segment ID (everything before the first
// element separator) and returns it along with the remainder (nil if
// there is no element separator at all, i.e. a segment with no elements).
func splitSegmentID(raw []byte, elemSep byte) ([]byte, []byte) {
	i := bytes.IndexByte(raw, elemSep)
	if i < 0 {
		return raw, nil
	}
	return raw[:i], raw[i+1:]
}
