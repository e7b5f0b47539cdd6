package clearing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits carried by every Amount.
// Inputs with more digits are rounded half-up at the decode boundary.
const Precision = 4

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a monetary value with at most Precision fractional digits.
//
// Amounts are exact: all balance arithmetic goes through decimal, never
// through floats.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any numeric value, rounding to Precision.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value).Round(Precision)}
}

// ParseAmount parses a decimal string into an Amount.
//
// Negative values are refused: no record kind carries a negative amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("invalid amount %q: negative", s)
	}
	return Amount{value: d.Round(Precision)}, nil
}

func (a Amount) Add(b Amount) Amount    { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount    { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }

// String renders the amount with up to Precision fractional digits,
// trailing zeros suppressed ("1.5", not "1.5000"). Both drivers share this
// rendering so their outputs stay byte-comparable.
func (a Amount) String() string { return a.value.String() }

// Decimal exposes the underlying decimal, for display conversions.
func (a Amount) Decimal() decimal.Decimal { return a.value }
