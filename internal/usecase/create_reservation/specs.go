package create_reservation

import (
	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
)

// eligibilitySpec собирает составное правило допуска к бронированию.
// Каждое листовое правило имеет имя, которое попадает в причину отказа.
func eligibilitySpec() specification.Specification[domain.ReservationContext] {
	slotInFuture := specification.New("slot must start in the future",
		func(ctx domain.ReservationContext) bool {
			return ctx.Slot.Start().After(ctx.RequestedAt)
		})

	planActive := specification.New("membership plan must be active",
		func(ctx domain.ReservationContext) bool {
			return ctx.PlanActive
		})

	underConcurrentLimit := specification.New("concurrent reservation limit reached",
		func(ctx domain.ReservationContext) bool {
			if ctx.ConcurrentLimit <= 0 {
				return true
			}
			return ctx.ActiveReservations < ctx.ConcurrentLimit
		})

	return specification.And(specification.And(slotInFuture, planActive), underConcurrentLimit)
}
