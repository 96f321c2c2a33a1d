package domain

import "time"

// ReservationContext carries everything eligibility specifications need
// to decide whether a reservation request is permitted. Built by the
// orchestrator, only read by the core.
type ReservationContext struct {
	MemberID   int64
	ResourceID int64
	PlanName   string
	Slot       TimeSlot

	// RequestedAt is the injected "now" of the request.
	RequestedAt time.Time

	// PlanActive is false when the member's plan has lapsed.
	PlanActive bool

	// ActiveReservations is the member's current number of active reservations.
	ActiveReservations int

	// ConcurrentLimit is the plan's maximum number of simultaneous
	// active reservations. 0 means unlimited.
	ConcurrentLimit int
}

// DiscountContext describes the member, plan and purchase a discount
// policy evaluates against.
type DiscountContext struct {
	MemberID              int64
	PlanName              string
	CompletedReservations int
	IsFirstReservation    bool

	// RequestedAt is the injected "now" of the purchase.
	RequestedAt time.Time
}

// CancellationContext carries the data a cancellation policy needs.
// Lead time and the flags are supplied by the caller, never computed here.
type CancellationContext struct {
	// ReservedAt is the start of the reserved slot.
	ReservedAt time.Time

	// RequestedAt is the moment the cancellation was requested.
	RequestedAt time.Time

	// IsFirstCancellation is true when the member has never cancelled before.
	IsFirstCancellation bool

	// IsSameDay is true when the cancellation happens on the reserved day.
	IsSameDay bool

	// IsEmergency marks a cancellation claimed under an emergency exception.
	IsEmergency bool
}

// LeadTime returns the duration between the cancellation request and the
// reserved moment. Negative when the reserved moment has already passed.
func (c CancellationContext) LeadTime() time.Duration {
	return c.ReservedAt.Sub(c.RequestedAt)
}
