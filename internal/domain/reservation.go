package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending             ReservationStatus = "pending"
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusInProgress          ReservationStatus = "in_progress"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByMember   ReservationStatus = "cancelled_by_member"
	StatusCancelledByProvider ReservationStatus = "cancelled_by_provider"
	StatusNoShow              ReservationStatus = "no_show"
)

// Reservation represents a resource reservation in the system
type Reservation struct {
	ID         int64
	MemberID   int64
	ResourceID int64
	ProviderID int64 // ID владельца ресурса (провайдер может иметь несколько ресурсов)
	Slot       TimeSlot
	Status     ReservationStatus

	// Denormalized data for history
	ResourceName  string
	PlanName      string
	OriginalPrice Money
	FinalPrice    Money
	Notes         *string

	CancellationFee    *Money
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation is in an active state
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByMember &&
		r.Status != StatusCancelledByProvider &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByMember || r.Status == StatusCancelledByProvider
}

// IsCompleted returns true if the reservation is completed or was a no-show
func (r *Reservation) IsCompleted() bool {
	return r.Status == StatusCompleted || r.Status == StatusNoShow
}

// ConflictsWith returns true if another active reservation occupies
// an overlapping part of the same resource's schedule
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if other == nil || r.ResourceID != other.ResourceID {
		return false
	}
	if !r.IsActive() || !other.IsActive() {
		return false
	}
	return r.Slot.Overlaps(other.Slot)
}

// ResourceReservationsFilter фильтр для получения бронирований ресурса
type ResourceReservationsFilter struct {
	ResourceID      int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show
}
