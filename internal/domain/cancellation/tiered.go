package cancellation

import (
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// TieredPolicy charges by a fee table and optionally vetoes same-day
// cancellations below a lead-time floor. Covers the flat-rate and
// strict variants, which differ only in table and floor.
type TieredPolicy struct {
	name         string
	table        FeeTable
	sameDayFloor time.Duration // 0 = no same-day restriction
}

// NewTieredPolicy creates a tiered policy without a same-day restriction.
func NewTieredPolicy(name string, table FeeTable) *TieredPolicy {
	return &TieredPolicy{name: name, table: table}
}

// WithSameDayFloor returns a copy that vetoes same-day cancellations
// with less than the given lead time remaining.
func (p *TieredPolicy) WithSameDayFloor(floor time.Duration) *TieredPolicy {
	cp := *p
	cp.sameDayFloor = floor
	return &cp
}

// CalculateFee charges by the rule table. Well-defined even when the
// cancellation is disallowed: a vetoed same-day cancellation forfeits
// the full price.
func (p *TieredPolicy) CalculateFee(price domain.Money, ctx domain.CancellationContext) (domain.Money, error) {
	if allowed, _ := p.IsCancellationAllowed(ctx); !allowed {
		return price, nil
	}
	return p.table.CalculateFee(price, ctx.LeadTime())
}

// IsCancellationAllowed vetoes same-day cancellations below the floor.
func (p *TieredPolicy) IsCancellationAllowed(ctx domain.CancellationContext) (bool, string) {
	if p.sameDayFloor > 0 && ctx.IsSameDay && ctx.LeadTime() < p.sameDayFloor {
		return false, fmt.Sprintf(
			"same-day cancellation requires at least %s before the reserved time", p.sameDayFloor)
	}
	return true, ""
}

// Describe renders the policy name and tier count.
func (p *TieredPolicy) Describe() string {
	desc := fmt.Sprintf("%s: %d fee tiers", p.name, len(p.table.rules))
	if p.sameDayFloor > 0 {
		desc += fmt.Sprintf(", same-day floor %s", p.sameDayFloor)
	}
	return desc
}
