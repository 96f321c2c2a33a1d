package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
)

// RatePolicy discounts the price by a fixed rate in [0, 1], with an
// optional minimum-price threshold and an optional cap on the discount
// amount. Applied in that fixed order: threshold check, raw amount from
// the rate, then the cap.
type RatePolicy struct {
	name        string
	rate        decimal.Decimal
	condition   specification.Specification[domain.DiscountContext]
	minPrice    *domain.Money
	maxDiscount *domain.Money
	priority    int
}

// NewRatePolicy creates a rate discount policy. The rate is validated
// at construction; condition may be nil, meaning always applicable.
func NewRatePolicy(
	name string,
	rate decimal.Decimal,
	condition specification.Specification[domain.DiscountContext],
) (*RatePolicy, error) {
	if err := domain.ValidateRate(rate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return &RatePolicy{
		name:      name,
		rate:      rate,
		condition: condition,
		priority:  DefaultPriority,
	}, nil
}

// WithMinPrice returns a copy that leaves prices below the threshold
// untouched: below it, Apply returns the original price unchanged,
// never a partial discount.
func (p *RatePolicy) WithMinPrice(min domain.Money) *RatePolicy {
	cp := *p
	cp.minPrice = &min
	return &cp
}

// WithMaxDiscount returns a copy that caps the discount amount.
func (p *RatePolicy) WithMaxDiscount(max domain.Money) *RatePolicy {
	cp := *p
	cp.maxDiscount = &max
	return &cp
}

// WithPriority returns a copy with an explicit priority.
func (p *RatePolicy) WithPriority(priority int) *RatePolicy {
	cp := *p
	cp.priority = priority
	return &cp
}

// IsApplicable evaluates the attached condition; nil means always applicable.
func (p *RatePolicy) IsApplicable(ctx domain.DiscountContext) bool {
	if p.condition == nil {
		return true
	}
	return p.condition.IsSatisfiedBy(ctx)
}

// Apply returns the discounted price.
func (p *RatePolicy) Apply(price domain.Money, _ domain.DiscountContext) (domain.Money, error) {
	// 1. Минимальный порог цены: ниже него скидка не применяется вовсе
	if p.minPrice != nil {
		below, err := price.LessThan(*p.minPrice)
		if err != nil {
			return domain.Money{}, fmt.Errorf("%w: %s - threshold check: %v", ErrApplyFailed, p.name, err)
		}
		if below {
			return price, nil
		}
	}

	// 2. Сырая сумма скидки из ставки
	discount, err := price.MultiplyRate(p.rate)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s - rate: %v", ErrApplyFailed, p.name, err)
	}

	// 3. Ограничение суммы скидки
	if p.maxDiscount != nil {
		discount, err = discount.Min(*p.maxDiscount)
		if err != nil {
			return domain.Money{}, fmt.Errorf("%w: %s - cap: %v", ErrApplyFailed, p.name, err)
		}
	}

	final, err := price.Subtract(discount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s - subtract: %v", ErrApplyFailed, p.name, err)
	}
	return final, nil
}

// Priority returns the ordering key.
func (p *RatePolicy) Priority() int {
	return p.priority
}

// Describe renders the policy for receipts.
func (p *RatePolicy) Describe() string {
	hundred := decimal.NewFromInt(100)
	desc := fmt.Sprintf("%s: %s%% discount", p.name, p.rate.Mul(hundred))
	if p.minPrice != nil {
		desc += fmt.Sprintf(", min price %s", *p.minPrice)
	}
	if p.maxDiscount != nil {
		desc += fmt.Sprintf(", max discount %s", *p.maxDiscount)
	}
	return desc
}
