package report

import (
	"errors"
	"time"

	"github.com/healthedi/x12/model"
)

// ErrNilTransaction indicates a nil transaction was provided.
var ErrNilTransaction = errors.New("nil transaction")

// TransactionReport summarizes one transaction's validation outcome.
type TransactionReport struct {
	Code          string                  `json:"code"`
	Version       string                  `json:"version"`
	ControlNumber string                  `json:"control_number"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Valid         bool                    `json:"valid"`
	Errors        []model.ValidationError `json:"errors,omitempty"`
}

// Builder builds TransactionReport values from a closed transaction
// model and the errors its validators found.
type Builder interface {
	// Build runs nothing itself — it packages errs (already produced by
	// model.RunAll against tx's schema validators) into a report.
	Build(tx *model.Transaction, errs []model.ValidationError) (TransactionReport, error)
}

type builder struct {
	timeFunc func() time.Time
}

// Option configures a Builder.
type Option func(*builder)

// WithTimeFunc sets a custom clock, for deterministic tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(b *builder) { b.timeFunc = fn }
}

// NewBuilder creates a report Builder with the given options.
func NewBuilder(opts ...Option) Builder {
	b := &builder{timeFunc: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *builder) Build(tx *model.Transaction, errs []model.ValidationError) (TransactionReport, error) {
	if tx == nil {
		return TransactionReport{}, ErrNilTransaction
	}
	return TransactionReport{
		Code:          tx.Code,
		Version:       tx.Version,
		ControlNumber: tx.ControlNumber,
		GeneratedAt:   b.timeFunc(),
		Valid:         len(errs) == 0,
		Errors:        errs,
	}, nil
}
