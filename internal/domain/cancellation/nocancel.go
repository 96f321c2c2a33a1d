package cancellation

import (
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// NoCancellationPolicy forbids cancellation outright, optionally
// admitting an emergency exception with its own lead-time floor.
// The fee is always the full price: even an allowed emergency
// cancellation forfeits the payment.
type NoCancellationPolicy struct {
	name           string
	emergencyFloor *time.Duration // nil = no exception at all
}

// NewNoCancellationPolicy creates a policy with no exceptions.
func NewNoCancellationPolicy(name string) *NoCancellationPolicy {
	return &NoCancellationPolicy{name: name}
}

// WithEmergencyException returns a copy that permits emergency
// cancellations with at least the given lead time remaining.
func (p *NoCancellationPolicy) WithEmergencyException(floor time.Duration) *NoCancellationPolicy {
	cp := *p
	cp.emergencyFloor = &floor
	return &cp
}

// CalculateFee always forfeits the full price.
func (p *NoCancellationPolicy) CalculateFee(price domain.Money, _ domain.CancellationContext) (domain.Money, error) {
	return price, nil
}

// IsCancellationAllowed permits only emergency cancellations above the
// configured floor, when an exception is configured at all.
func (p *NoCancellationPolicy) IsCancellationAllowed(ctx domain.CancellationContext) (bool, string) {
	if p.emergencyFloor == nil {
		return false, "this reservation cannot be cancelled"
	}
	if !ctx.IsEmergency {
		return false, "this reservation can only be cancelled under an emergency exception"
	}
	if ctx.LeadTime() < *p.emergencyFloor {
		return false, fmt.Sprintf(
			"emergency cancellation requires at least %s before the reserved time", *p.emergencyFloor)
	}
	return true, ""
}

// Describe renders the policy for receipts.
func (p *NoCancellationPolicy) Describe() string {
	if p.emergencyFloor == nil {
		return fmt.Sprintf("%s: no cancellation", p.name)
	}
	return fmt.Sprintf("%s: no cancellation except emergencies %s in advance", p.name, *p.emergencyFloor)
}
