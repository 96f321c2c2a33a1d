package cancellation

import "github.com/junhyeong9812/hexapass-sub002/internal/domain"

// Policy is a cancellation policy: a fee formula plus an independent
// permission predicate. A vetoed cancellation still has a well-defined
// fee (policies here define it as full price). Denial is normal control
// flow and carries a human-readable reason, never an error.
type Policy interface {
	// CalculateFee computes the fee charged for cancelling at the
	// lead time carried by the context.
	CalculateFee(price domain.Money, ctx domain.CancellationContext) (domain.Money, error)

	// IsCancellationAllowed reports whether the cancellation may
	// proceed at all. When false, the second value explains why.
	IsCancellationAllowed(ctx domain.CancellationContext) (bool, string)

	// Describe renders the policy for receipts and audit logs.
	Describe() string
}
