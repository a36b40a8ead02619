package bankbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single ledger currency. Amounts are plain fixed-point
// values; the currency only drives display formatting.
const currencyCode = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal
}

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

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a Money from its decimal string representation (e.g. "42.50" or "-10").
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, currencyCode).Currency()
}

// String returns the display form of the value, rounded to the currency
// fraction with thousands separators, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	rounded := m.value.Round(int32(cur.Fraction))
	return cur.Formatter().Format(rounded.Shift(int32(cur.Fraction)).IntPart())
}

func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool  { return m.value.LessThan(n.value) }
func (m Money) Neg() Money             { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value)} }

// MulRate returns m scaled by a rate, exact (no rounding): interest on
// $50.00 at 0.15% is kept as $0.075 in the history.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(rate)}
}

// Decimal returns the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }
