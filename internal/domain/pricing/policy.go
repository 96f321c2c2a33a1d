// Package pricing implements the priority-chained discount calculator.
// Each policy is an interchangeable strategy holding only its own
// configuration; the chain owns ordering and application.
package pricing

import "github.com/junhyeong9812/hexapass-sub002/internal/domain"

// DefaultPriority is assigned to policies that do not set one.
// Lower values are evaluated and applied earlier.
const DefaultPriority = domain.DefaultDiscountPriority

// Policy is a single discount strategy.
type Policy interface {
	// IsApplicable reports whether this policy applies to the context.
	// Business-rule denial, not an error.
	IsApplicable(ctx domain.DiscountContext) bool

	// Apply transforms the original price into the discounted price.
	// Called only when IsApplicable returned true.
	Apply(price domain.Money, ctx domain.DiscountContext) (domain.Money, error)

	// Priority is the ordering key: lower sorts first.
	Priority() int

	// Describe renders a human-readable explanation for receipts.
	Describe() string
}
