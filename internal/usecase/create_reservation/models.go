package create_reservation

import (
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// Request - запрос на создание бронирования
type Request struct {
	MemberID     int64
	ResourceID   int64
	ProviderID   int64
	ResourceName string
	SlotStart    time.Time
	SlotEnd      time.Time
	BasePrice    string
	Currency     string
	Notes        *string
}

// Response - результат создания бронирования
type Response struct {
	ID            int64
	Status        string
	Slot          string
	SlotStart     time.Time
	SlotEnd       time.Time
	OriginalPrice string
	FinalPrice    string
	Discounts     []string
	CreatedAt     time.Time
}

func newResponse(reservation *domain.Reservation, discounts []string) *Response {
	return &Response{
		ID:            reservation.ID,
		Status:        string(reservation.Status),
		Slot:          reservation.Slot.String(),
		SlotStart:     reservation.Slot.Start(),
		SlotEnd:       reservation.Slot.End(),
		OriginalPrice: reservation.OriginalPrice.String(),
		FinalPrice:    reservation.FinalPrice.String(),
		Discounts:     discounts,
		CreatedAt:     reservation.CreatedAt,
	}
}
