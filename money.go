package clearing

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an amount with a currency for display purposes only.
//
// The engine itself is single-currency and works on Amount; Money exists
// so the report renderer can show balances the way a human expects
// ("$1,234.50" rather than "1234.5").
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a display value from an engine amount and an ISO currency code.
func M(a Amount, currency string) Money {
	return Money{value: a.Decimal(), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's own formatting, rounded to
// the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
