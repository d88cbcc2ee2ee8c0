package engine

import (
	"context"
	"io"

	"github.com/healthedi/x12/framer"
	"github.com/healthedi/x12/model"
	"github.com/healthedi/x12/report"
	"github.com/healthedi/x12/schema"
	"github.com/healthedi/x12/serialize"
)

// Result pairs a closed transaction model with its validation report.
type Result struct {
	Transaction *model.Transaction
	Report      report.TransactionReport
}

// ParseResult is the outcome of a whole-interchange Parse: every
// transaction found, plus any envelope-level problems the Framer
// accumulated (count mismatches on GE/IEA that are not tied to one
// transaction).
type ParseResult struct {
	Transactions   []Result
	EnvelopeErrors []error
}

// Engine is the façade spec §6 names: Parse, ParseSegments, Serialize.
type Engine interface {
	// Parse reads an entire interchange from r and returns every
	// transaction set it contains, each already validated.
	Parse(r io.Reader) (ParseResult, error)

	// ParseSegments exposes the same work one transaction at a time,
	// for callers that want to start acting on the first transaction
	// before the rest of a large interchange has arrived.
	ParseSegments(ctx context.Context, r io.Reader, fn func(Result) error) error

	// Serialize renders a transaction back to X12 wire bytes.
	Serialize(tx *model.Transaction) ([]byte, error)
}

type engine struct {
	framerOpts    []framer.Option
	serializer    serialize.Serializer
	reportBuilder report.Builder
}

// Option configures an Engine.
type Option func(*engine)

// WithFramerOptions forwards options to the underlying framer.Framer.
func WithFramerOptions(opts ...framer.Option) Option {
	return func(e *engine) { e.framerOpts = append(e.framerOpts, opts...) }
}

// WithSerializer overrides the Serializer used by Serialize.
func WithSerializer(s serialize.Serializer) Option {
	return func(e *engine) { e.serializer = s }
}

// WithReportBuilder overrides the report.Builder used to close out each
// transaction's validation report.
func WithReportBuilder(b report.Builder) Option {
	return func(e *engine) { e.reportBuilder = b }
}

// New creates an Engine with the given options.
func New(opts ...Option) Engine {
	e := &engine{
		serializer:    serialize.New(),
		reportBuilder: report.NewBuilder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engine) Parse(r io.Reader) (ParseResult, error) {
	var out ParseResult
	f := framer.New(r, e.framerOpts...)

	for f.Scan() {
		res, err := e.buildResult(f.Transaction())
		if err != nil {
			return out, err
		}
		out.Transactions = append(out.Transactions, res)
	}
	out.EnvelopeErrors = f.EnvelopeErrors()
	if err := f.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func (e *engine) buildResult(tx *model.Transaction) (Result, error) {
	ts, ok := schema.Lookup(tx.Code, tx.Version)
	var errs []model.ValidationError
	if ok {
		errs = model.RunAll(tx, ts.Validators)
	}
	rep, err := e.reportBuilder.Build(tx, errs)
	if err != nil {
		return Result{}, err
	}
	return Result{Transaction: tx, Report: rep}, nil
}

func (e *engine) ParseSegments(ctx context.Context, r io.Reader, fn func(Result) error) error {
	f := framer.New(r, e.framerOpts...)

	for f.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := e.buildResult(f.Transaction())
		if err != nil {
			return err
		}
		if err := fn(res); err != nil {
			return err
		}
	}
	return f.Err()
}

func (e *engine) Serialize(tx *model.Transaction) ([]byte, error) {
	return e.serializer.Serialize(tx)
}
