package serialize

import (
	"bytes"
	"context"
	"io"

	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/x12"
)

// Serializer renders a closed model.Transaction to X12 wire bytes.
type Serializer interface {
	// Serialize renders tx's loop tree, in document order, to bytes.
	Serialize(tx *model.Transaction) ([]byte, error)

	// SerializeToWriter streams tx's rendered bytes to w, checking ctx
	// for cancellation between loops.
	SerializeToWriter(ctx context.Context, w io.Writer, tx *model.Transaction) error
}

type serializer struct {
	cfg config
}

// New creates a Serializer with the given options.
func New(opts ...Option) Serializer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &serializer{cfg: cfg}
}

func (s *serializer) Serialize(tx *model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.SerializeToWriter(context.Background(), &buf, tx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *serializer) SerializeToWriter(ctx context.Context, w io.Writer, tx *model.Transaction) error {
	if tx == nil {
		return &Error{Message: "cannot serialize nil transaction"}
	}

	delims := s.cfg.delims
	if (delims == x12.Delimiters{}) {
		delims = tx.Delims
	}
	if (delims == x12.Delimiters{}) {
		delims = x12.DefaultDelimiters()
	}

	return s.writeLoop(ctx, w, tx, tx.Root(), delims)
}

func (s *serializer) writeLoop(ctx context.Context, w io.Writer, tx *model.Transaction, l *model.Loop, d x12.Delimiters) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	for _, seg := range l.Attached() {
		if _, err := w.Write(seg.Bytes(d)); err != nil {
			return &Error{LoopName: l.Name, Message: "write failed", Cause: err}
		}
	}

	for _, childName := range l.ChildNames() {
		for _, idx := range l.ChildIndexes(childName) {
			child := tx.Loop(idx)
			if child == nil {
				continue
			}
			if err := s.writeLoop(ctx, w, tx, child, d); err != nil {
				return err
			}
		}
	}
	return nil
}
