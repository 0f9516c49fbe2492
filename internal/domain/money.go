package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyBRL is the only currency code the domain accepts.
// Multi-currency support is a known limitation, not a planned feature yet.
const CurrencyBRL = "BRL"

// Money represents an immutable monetary value paired with a currency code.
// Amounts are kept in minor units (cents), so Money is comparable: == and map
// keys follow (amount, currency) value equality. The zero value Money{} is not
// a valid amount and stands for an absent operand; build instances with
// NewMoney or Zero.
type Money struct {
	cents    int64
	currency string
}

// NewMoney validates amount and currency and returns a new Money.
// The amount must be non-negative with at most two fractional digits, and the
// currency must be exactly CurrencyBRL.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidArgument, amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, fmt.Errorf("%w: amount must not have more than two decimal places, got %s", ErrInvalidArgument, amount)
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, fmt.Errorf("%w: currency must not be empty", ErrInvalidArgument)
	}
	if currency != CurrencyBRL {
		return Money{}, fmt.Errorf("%w: unsupported currency %q, only %s is accepted", ErrInvalidArgument, currency, CurrencyBRL)
	}
	cents, ok := centsOf(amount)
	if !ok {
		return Money{}, fmt.Errorf("%w: amount %s exceeds the maximum representable value", ErrInvalidArgument, amount)
	}
	return Money{cents: cents, currency: currency}, nil
}

// Zero returns the zero amount in BRL, equivalent to
// NewMoney(decimal.Zero, CurrencyBRL) minus the impossible error.
func Zero() Money {
	return Money{currency: CurrencyBRL}
}

// Amount returns the monetary amount with two fractional digits.
func (m Money) Amount() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Equal reports value equality; identical to comparing with ==.
func (m Money) Equal(other Money) bool {
	return m == other
}

// String formats the value as "150.75 BRL".
func (m Money) String() string {
	return m.Amount().StringFixed(2) + " " + m.currency
}

// Add returns the sum of m and other in the shared currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.compatible(other); err != nil {
		return Money{}, err
	}
	sum := m.cents + other.cents
	// Both operands are non-negative, so wrap-around means overflow.
	if sum < m.cents {
		return Money{}, fmt.Errorf("%w: adding %s and %s exceeds the maximum representable amount", ErrInvalidOperation, m, other)
	}
	return Money{cents: sum, currency: m.currency}, nil
}

// Subtract returns m minus other. Amounts are non-negative, so a result below
// zero is rejected.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.compatible(other); err != nil {
		return Money{}, err
	}
	if other.cents > m.cents {
		return Money{}, fmt.Errorf("%w: subtracting %s from %s would yield a negative amount", ErrInvalidOperation, other, m)
	}
	return Money{cents: m.cents - other.cents, currency: m.currency}, nil
}

// Multiply returns m scaled by factor, rounded half away from zero to cents.
// The factor must not be negative.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: factor must not be negative, got %s", ErrInvalidArgument, factor)
	}
	rounded := m.Amount().Mul(factor).Round(2)
	cents, ok := centsOf(rounded)
	if !ok {
		return Money{}, fmt.Errorf("%w: multiplying %s by %s exceeds the maximum representable amount", ErrInvalidOperation, m, factor)
	}
	return Money{cents: cents, currency: m.currency}, nil
}

// Divide returns m divided by divisor, rounded half away from zero to cents.
// The divisor must be positive.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.Sign() <= 0 {
		return Money{}, fmt.Errorf("%w: divisor must be positive, got %s", ErrInvalidArgument, divisor)
	}
	rounded := m.Amount().DivRound(divisor, 2)
	cents, ok := centsOf(rounded)
	if !ok {
		return Money{}, fmt.Errorf("%w: dividing %s by %s exceeds the maximum representable amount", ErrInvalidOperation, m, divisor)
	}
	return Money{cents: cents, currency: m.currency}, nil
}

// centsOf converts a two-decimal amount to minor units, reporting false when
// the shifted value does not fit in int64 cents.
func centsOf(amount decimal.Decimal) (int64, bool) {
	shifted := amount.Shift(2).BigInt()
	if !shifted.IsInt64() {
		return 0, false
	}
	return shifted.Int64(), true
}

// compatible rejects absent operands and currency mismatches.
func (m Money) compatible(other Money) error {
	if other == (Money{}) {
		return fmt.Errorf("%w: money operand is required", ErrNilOperand)
	}
	if other.currency != m.currency {
		return fmt.Errorf("%w: currency mismatch, %s vs %s", ErrInvalidOperation, m.currency, other.currency)
	}
	return nil
}
