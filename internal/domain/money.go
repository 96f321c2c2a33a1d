package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a non-negative amount of a single currency.
// The zero value is not a valid Money; construct through NewMoney or Zero.
// All operations return a new value, the receiver is never modified.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value after validating the amount and currency.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return Money{}, ErrCurrencyRequired
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: got %s", ErrNegativeAmount, amount)
	}
	return Money{amount: amount, currency: strings.ToUpper(currency)}, nil
}

// NewMoneyFromInt creates a Money value from a whole amount.
func NewMoneyFromInt(amount int64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount), currency)
}

// NewMoneyFromString creates a Money value from a decimal string like "12500.50".
func NewMoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrNegativeAmount, err)
	}
	return NewMoney(d, currency)
}

// Zero returns a zero amount of the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero returns true for a zero amount.
// Note: the uninitialized Money{} also reports zero; callers that care
// about validity should check Currency() != "".
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns the sum of two same-currency amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two same-currency amounts.
// Fails when the result would be negative instead of clamping.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeAmount, m, other)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply returns the amount multiplied by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: got %s", ErrNegativeFactor, factor)
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency}, nil
}

// MultiplyRate returns the fraction of the amount for a rate in [0, 1].
func (m Money) MultiplyRate(rate decimal.Decimal) (Money, error) {
	if err := ValidateRate(rate); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Mul(rate), currency: m.currency}, nil
}

// Divide returns the amount divided by a positive divisor,
// rounded half-up to MoneyScale fractional digits.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	if divisor.IsNegative() {
		return Money{}, fmt.Errorf("%w: got %s", ErrNegativeFactor, divisor)
	}
	return Money{amount: m.amount.DivRound(divisor, MoneyScale), currency: m.currency}, nil
}

// Equals reports whether two amounts are equal in value and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan reports whether m > other. Same-currency operands required.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan reports whether m < other. Same-currency operands required.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// Min returns the smaller of two same-currency amounts.
func (m Money) Min(other Money) (Money, error) {
	less, err := m.LessThan(other)
	if err != nil {
		return Money{}, err
	}
	if less {
		return m, nil
	}
	return other, nil
}

// String renders the amount as "<amount> <currencyCode>".
// Downstream receipt rendering parses this format; treat it as stable.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

func (m Money) assertSameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %q and %q", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

// ValidateRate checks that a rate lies in the closed range [0, 1].
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, rate)
	}
	return nil
}
