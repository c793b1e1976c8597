package models

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places stored for every amount.
const MoneyPlaces = 2

// Money is a fixed two-place decimal amount. It is encoded as a JSON string
// ("8000.00") and accepts either a JSON number or string on input.
type Money struct {
	decimal.Decimal
}

// ZeroMoney is 0.00.
var ZeroMoney = Money{decimal.Zero}

func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// MustParseMoney parses s and panics on error. Intended for tests and constants.
func MustParseMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney, err
	}
	return Money{d}, nil
}

func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

func (m Money) Sub(o Money) Money {
	return Money{m.Decimal.Sub(o.Decimal)}
}

func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(MoneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// FitsColumn reports whether m can be stored in a NUMERIC(12,2) column
// without rounding: at most two decimal places and ten integer digits.
func (m Money) FitsColumn() bool {
	if !m.Decimal.Equal(m.Decimal.Round(MoneyPlaces)) {
		return false
	}
	limit := decimal.New(1, 10)
	return m.Decimal.Abs().LessThan(limit)
}
