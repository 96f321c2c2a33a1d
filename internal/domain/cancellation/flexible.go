package cancellation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// FlexiblePolicy grants first-cancellation leniency on top of a fee
// table: the first cancellation is free above a short lead-time floor
// and charged at a reduced rate below it. Repeat cancellations pay the
// full table fee.
type FlexiblePolicy struct {
	name        string
	table       FeeTable
	waiverFloor time.Duration
	reducedRate decimal.Decimal // multiplier for first cancellations below the floor
}

// NewFlexiblePolicy creates a flexible policy. reducedRate must lie in
// [0, 1]; it scales the table fee for first cancellations below the floor.
func NewFlexiblePolicy(name string, table FeeTable, waiverFloor time.Duration, reducedRate decimal.Decimal) (*FlexiblePolicy, error) {
	if err := domain.ValidateRate(reducedRate); err != nil {
		return nil, fmt.Errorf("%w: reduced rate: %v", ErrInvalidRule, err)
	}
	if waiverFloor < 0 {
		return nil, fmt.Errorf("%w: negative waiver floor %s", ErrInvalidRule, waiverFloor)
	}
	return &FlexiblePolicy{
		name:        name,
		table:       table,
		waiverFloor: waiverFloor,
		reducedRate: reducedRate,
	}, nil
}

// CalculateFee applies first-cancellation leniency before the table.
func (p *FlexiblePolicy) CalculateFee(price domain.Money, ctx domain.CancellationContext) (domain.Money, error) {
	leadTime := ctx.LeadTime()

	// Просроченная отмена лишает льготы: полная цена
	if leadTime < 0 {
		return price, nil
	}

	if ctx.IsFirstCancellation {
		if leadTime >= p.waiverFloor {
			zero, err := domain.Zero(price.Currency())
			if err != nil {
				return domain.Money{}, fmt.Errorf("%w: waiver: %v", ErrCalculationFailed, err)
			}
			return zero, nil
		}

		fee, err := p.table.CalculateFee(price, leadTime)
		if err != nil {
			return domain.Money{}, err
		}
		reduced, err := fee.MultiplyRate(p.reducedRate)
		if err != nil {
			return domain.Money{}, fmt.Errorf("%w: reduced rate: %v", ErrCalculationFailed, err)
		}
		return reduced, nil
	}

	return p.table.CalculateFee(price, leadTime)
}

// IsCancellationAllowed always permits cancellation under this policy.
func (p *FlexiblePolicy) IsCancellationAllowed(_ domain.CancellationContext) (bool, string) {
	return true, ""
}

// Describe renders the policy for receipts.
func (p *FlexiblePolicy) Describe() string {
	return fmt.Sprintf("%s: first cancellation free above %s, reduced x%s below",
		p.name, p.waiverFloor, p.reducedRate)
}
