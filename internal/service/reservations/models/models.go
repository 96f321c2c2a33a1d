package models

import (
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// Request модели

// GetMemberReservationsRequest запрос истории бронирований участника
type GetMemberReservationsRequest struct {
	MemberID int64
	Status   *string // Опциональный фильтр по статусу
}

// GetResourceReservationsRequest запрос бронирований ресурса (для провайдеров)
type GetResourceReservationsRequest struct {
	ResourceID      int64
	UserID          int64 // Запрашивающий пользователь, должен быть провайдером ресурса
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetResourceReservationsRequest) ToDomainFilter() (domain.ResourceReservationsFilter, error) {
	filter := domain.ResourceReservationsFilter{
		ResourceID:      r.ResourceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.ResourceReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64  `json:"id"`
	MemberID   int64  `json:"memberId"`
	ResourceID int64  `json:"resourceId"`
	ProviderID int64  `json:"providerId"`
	SlotStart  string `json:"slotStart"`
	SlotEnd    string `json:"slotEnd"`
	Slot       string `json:"slot"` // Человекочитаемое описание слота
	Status     string `json:"status"`

	ResourceName  string  `json:"resourceName"`
	PlanName      string  `json:"planName"`
	OriginalPrice string  `json:"originalPrice"`
	FinalPrice    string  `json:"finalPrice"`
	Notes         *string `json:"notes,omitempty"`

	CancellationFee    *string    `json:"cancellationFee,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Money и TimeSlot рендерятся их стабильными строковыми форматами
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		MemberID:           r.MemberID,
		ResourceID:         r.ResourceID,
		ProviderID:         r.ProviderID,
		SlotStart:          r.Slot.Start().Format(time.RFC3339),
		SlotEnd:            r.Slot.End().Format(time.RFC3339),
		Slot:               r.Slot.String(),
		Status:             string(r.Status),
		ResourceName:       r.ResourceName,
		PlanName:           r.PlanName,
		OriginalPrice:      r.OriginalPrice.String(),
		FinalPrice:         r.FinalPrice.String(),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancellationFee != nil {
		fee := r.CancellationFee.String()
		resp.CancellationFee = &fee
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}

// ToDomainReservationStatus валидирует и конвертирует строковый статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByMember,
		domain.StatusCancelledByProvider,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}
