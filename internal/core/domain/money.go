package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code. HTG is the local currency;
// all wallets default to it.
type Currency string

const (
	CurrencyHTG Currency = "HTG"
	CurrencyUSD Currency = "USD"
)

// Valid reports whether the currency is one the ledger supports.
func (c Currency) Valid() bool {
	return c == CurrencyHTG || c == CurrencyUSD
}

// Money is a fixed-point amount in minor units (cents) bound to a
// currency. Arithmetic between different currencies is an error;
// balances never use floating point.
type Money struct {
	Cents    int64
	Currency Currency
}

// NewMoney creates a Money value from cents.
func NewMoney(cents int64, currency Currency) Money {
	return Money{Cents: cents, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{Currency: currency}
}

// ParseAmount converts a decimal string (e.g. "150.25") into Money.
// More than two fraction digits or a negative value is rejected.
func ParseAmount(s string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("amount %q is negative", s)
	}
	if d.Exponent() < -2 {
		return Money{}, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return Money{}, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return Money{Cents: cents.IntPart(), Currency: currency}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents + other.Cents, Currency: m.Currency}, nil
}

// Sub returns m - other.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents - other.Cents, Currency: m.Currency}, nil
}

// Percent computes a percentage expressed in basis points
// (100 bp = 1%), rounding half up to the nearest cent.
func (m Money) Percent(basisPoints int64) Money {
	return Money{
		Cents:    (m.Cents*basisPoints + 5000) / 10000,
		Currency: m.Currency,
	}
}

// Cmp returns -1, 0 or 1 comparing amounts of the same currency.
func (m Money) Cmp(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	switch {
	case m.Cents < other.Cents:
		return -1, nil
	case m.Cents > other.Cents:
		return 1, nil
	default:
		return 0, nil
	}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.Cents == 0 }

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool { return m.Cents > 0 }

// IsNegative reports whether the amount is negative. A negative Money
// must never be stored as a balance.
func (m Money) IsNegative() bool { return m.Cents < 0 }

// Decimal returns the amount formatted with two fraction digits,
// without the currency code.
func (m Money) Decimal() string {
	return decimal.New(m.Cents, -2).StringFixed(2)
}

// String returns a human-readable representation, e.g. "150.25 HTG".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal(), m.Currency)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON serializes the amount as a two-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Decimal(), Currency: string(m.Currency)})
}

// UnmarshalJSON parses {"amount":"150.25","currency":"HTG"}.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseAmount(v.Amount, Currency(v.Currency))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
