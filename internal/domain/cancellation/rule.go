// Package cancellation implements the tiered, duration-windowed
// cancellation-fee calculator and its interchangeable policy variants.
package cancellation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// FeeRule is one duration-windowed fee formula. The window is inclusive
// on the lower bound and exclusive on the upper one: a lead time of
// exactly 24h belongs to the ">=24h" tier, not the "<24h" tier below it.
type FeeRule struct {
	// MinLeadTime is the inclusive lower bound of the window.
	MinLeadTime time.Duration

	// MaxLeadTime is the exclusive upper bound; nil means unbounded.
	MaxLeadTime *time.Duration

	// Rate is the proportional part of the fee, in [0, 1].
	Rate decimal.Decimal

	// FixedFee is added on top of the proportional part.
	FixedFee domain.Money

	// Cap limits the total fee when set.
	Cap *domain.Money
}

// Matches reports whether the lead time falls inside the rule's window.
func (r FeeRule) Matches(leadTime time.Duration) bool {
	if leadTime < r.MinLeadTime {
		return false
	}
	return r.MaxLeadTime == nil || leadTime < *r.MaxLeadTime
}

func (r FeeRule) validate() error {
	if r.MinLeadTime < 0 {
		return fmt.Errorf("%w: negative min lead time %s", ErrInvalidRule, r.MinLeadTime)
	}
	if r.MaxLeadTime != nil && *r.MaxLeadTime <= r.MinLeadTime {
		return fmt.Errorf("%w: window [%s, %s) is empty", ErrInvalidRule, r.MinLeadTime, *r.MaxLeadTime)
	}
	if err := domain.ValidateRate(r.Rate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return nil
}

// FeeTable is the ordered rule table. Rules are evaluated in declaration
// order; the first rule whose window contains the lead time wins.
type FeeTable struct {
	rules []FeeRule
}

// NewFeeTable creates a validated, non-empty fee table.
func NewFeeTable(rules ...FeeRule) (FeeTable, error) {
	if len(rules) == 0 {
		return FeeTable{}, ErrEmptyTable
	}
	for i, r := range rules {
		if err := r.validate(); err != nil {
			return FeeTable{}, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	owned := make([]FeeRule, len(rules))
	copy(owned, rules)
	return FeeTable{rules: owned}, nil
}

// Rules returns the rules in evaluation order.
func (t FeeTable) Rules() []FeeRule {
	out := make([]FeeRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// CalculateFee computes the cancellation fee for the given price and
// lead time. A negative lead time (cancelling after the reserved moment)
// and an unmatched lead time both forfeit the full price; that fail-safe
// fallback is deliberate. The result is clamped to [0, price].
func (t FeeTable) CalculateFee(price domain.Money, leadTime time.Duration) (domain.Money, error) {
	if leadTime < 0 {
		return price, nil
	}

	rule, found := t.match(leadTime)
	if !found {
		return price, nil
	}

	fee, err := price.MultiplyRate(rule.Rate)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: rate: %v", ErrCalculationFailed, err)
	}
	if rule.FixedFee.Currency() != "" {
		fee, err = fee.Add(rule.FixedFee)
		if err != nil {
			return domain.Money{}, fmt.Errorf("%w: fixed fee: %v", ErrCalculationFailed, err)
		}
	}
	if rule.Cap != nil {
		fee, err = fee.Min(*rule.Cap)
		if err != nil {
			return domain.Money{}, fmt.Errorf("%w: cap: %v", ErrCalculationFailed, err)
		}
	}

	// Комиссия никогда не превышает исходную цену
	fee, err = fee.Min(price)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: clamp: %v", ErrCalculationFailed, err)
	}
	return fee, nil
}

func (t FeeTable) match(leadTime time.Duration) (FeeRule, bool) {
	for _, r := range t.rules {
		if r.Matches(leadTime) {
			return r, true
		}
	}
	return FeeRule{}, false
}
