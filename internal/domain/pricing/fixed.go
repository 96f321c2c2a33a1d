package pricing

import (
	"fmt"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
)

// FixedAmountPolicy subtracts a fixed amount from the price. A discount
// larger than the price clamps the final price to zero: a too-large
// coupon is a business outcome, not an arithmetic error.
type FixedAmountPolicy struct {
	name      string
	amount    domain.Money
	condition specification.Specification[domain.DiscountContext]
	priority  int
}

// NewFixedAmountPolicy creates a fixed-amount discount policy.
// Condition may be nil, meaning always applicable.
func NewFixedAmountPolicy(
	name string,
	amount domain.Money,
	condition specification.Specification[domain.DiscountContext],
) *FixedAmountPolicy {
	return &FixedAmountPolicy{
		name:      name,
		amount:    amount,
		condition: condition,
		priority:  DefaultPriority,
	}
}

// WithPriority returns a copy with an explicit priority.
func (p *FixedAmountPolicy) WithPriority(priority int) *FixedAmountPolicy {
	cp := *p
	cp.priority = priority
	return &cp
}

// IsApplicable evaluates the attached condition; nil means always applicable.
func (p *FixedAmountPolicy) IsApplicable(ctx domain.DiscountContext) bool {
	if p.condition == nil {
		return true
	}
	return p.condition.IsSatisfiedBy(ctx)
}

// Apply returns the discounted price.
func (p *FixedAmountPolicy) Apply(price domain.Money, _ domain.DiscountContext) (domain.Money, error) {
	discount, err := p.amount.Min(price)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s - clamp: %v", ErrApplyFailed, p.name, err)
	}
	final, err := price.Subtract(discount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s - subtract: %v", ErrApplyFailed, p.name, err)
	}
	return final, nil
}

// Priority returns the ordering key.
func (p *FixedAmountPolicy) Priority() int {
	return p.priority
}

// Describe renders the policy for receipts.
func (p *FixedAmountPolicy) Describe() string {
	return fmt.Sprintf("%s: %s off", p.name, p.amount)
}
