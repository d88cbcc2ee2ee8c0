package schema

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/healthedi/x12/x12"
)

// ElementType is the typing discipline applied to one element's raw
// string value.
type ElementType int

// Element types per spec §4.4.
const (
	// TypeAN is alphanumeric, length-checked, untyped beyond that.
	TypeAN ElementType = iota
	// TypeID is a code, optionally checked against an enumerated domain.
	TypeID
	// TypeNumeric covers N0…N9: whole-number element types.
	TypeNumeric
	// TypeDecimal is R: a decimal with implied scale.
	TypeDecimal
	// TypeDate is DT: YYYYMMDD or YYMMDD.
	TypeDate
	// TypeTime is TM: HHMM or HHMMSS.
	TypeTime
)

// ElementSchema declares one segment element's type and constraints.
type ElementSchema struct {
	Name      string
	Type      ElementType
	Required  bool
	MinLength int
	MaxLength int
	// Enum constrains TypeID values to a fixed domain. Empty means any
	// code value is accepted.
	Enum []string
}

// TypedElement is the result of coercing a raw x12.Element per its
// ElementSchema.
type TypedElement struct {
	Raw  string
	Type ElementType

	Str string
	Int int64
	Dec decimal.Decimal
	At  time.Time // Date or Time-of-day, per Type
}

// centuryPivot is the two-digit-year cutoff from spec §4.4: years >= 70
// are 19xx, else 20xx.
const centuryPivot = 70

// TypeElement coerces a raw x12.Element to a TypedElement per es.
func TypeElement(segmentID string, ordinal int, e x12.Element, es ElementSchema) (TypedElement, error) {
	raw := e.Scalar()

	if raw == "" {
		if es.Required {
			return TypedElement{}, &x12.ElementTypeError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw,
				Expected: "required value", Cause: fmt.Errorf("element is empty"),
			}
		}
		return TypedElement{Raw: raw, Type: es.Type}, nil
	}

	if es.MinLength > 0 && len(raw) < es.MinLength {
		return TypedElement{}, &x12.ElementTypeError{
			SegmentID: segmentID, Ordinal: ordinal, Raw: raw,
			Expected: fmt.Sprintf("length >= %d", es.MinLength),
		}
	}
	if es.MaxLength > 0 && len(raw) > es.MaxLength {
		return TypedElement{}, &x12.ElementTypeError{
			SegmentID: segmentID, Ordinal: ordinal, Raw: raw,
			Expected: fmt.Sprintf("length <= %d", es.MaxLength),
		}
	}

	switch es.Type {
	case TypeAN:
		return TypedElement{Raw: raw, Type: es.Type, Str: raw}, nil

	case TypeID:
		if len(es.Enum) > 0 && !contains(es.Enum, raw) {
			return TypedElement{}, &x12.EnumDomainError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Domain: es.Enum,
			}
		}
		return TypedElement{Raw: raw, Type: es.Type, Str: raw}, nil

	case TypeNumeric:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return TypedElement{}, &x12.ElementTypeError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Expected: "integer", Cause: err,
			}
		}
		return TypedElement{Raw: raw, Type: es.Type, Int: n}, nil

	case TypeDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return TypedElement{}, &x12.ElementTypeError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Expected: "decimal", Cause: err,
			}
		}
		return TypedElement{Raw: raw, Type: es.Type, Dec: d}, nil

	case TypeDate:
		t, err := parseDate(raw)
		if err != nil {
			return TypedElement{}, &x12.ElementTypeError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Expected: "date (CCYYMMDD or YYMMDD)", Cause: err,
			}
		}
		return TypedElement{Raw: raw, Type: es.Type, At: t}, nil

	case TypeTime:
		t, err := parseTime(raw)
		if err != nil {
			return TypedElement{}, &x12.ElementTypeError{
				SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Expected: "time (HHMM or HHMMSS)", Cause: err,
			}
		}
		return TypedElement{Raw: raw, Type: es.Type, At: t}, nil
	}

	return TypedElement{}, &x12.ElementTypeError{SegmentID: segmentID, Ordinal: ordinal, Raw: raw, Expected: "known type"}
}

func parseDate(raw string) (time.Time, error) {
	switch len(raw) {
	case 8:
		return time.Parse("20060102", raw)
	case 6:
		yy, err := strconv.Atoi(raw[:2])
		if err != nil {
			return time.Time{}, err
		}
		century := "20"
		if yy >= centuryPivot {
			century = "19"
		}
		return time.Parse("20060102", century+raw)
	default:
		return time.Time{}, fmt.Errorf("date must be 6 or 8 digits, got %d", len(raw))
	}
}

func parseTime(raw string) (time.Time, error) {
	switch len(raw) {
	case 4:
		return time.Parse("1504", raw)
	case 6:
		return time.Parse("150405", raw)
	default:
		return time.Time{}, fmt.Errorf("time must be 4 or 6 digits, got %d", len(raw))
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
