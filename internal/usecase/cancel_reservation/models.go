package cancel_reservation

import (
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// Request - запрос на отмену бронирования
type Request struct {
	ReservationID int64
	UserID        int64
	Reason        *string
	IsEmergency   bool
}

// Response - результат отмены бронирования
type Response struct {
	ID              int64
	Status          string
	CancellationFee string
	Refund          string
	Policy          string
	CancelledAt     time.Time
}

func newResponse(reservationID int64, status domain.ReservationStatus, fee, refund domain.Money, policy string, cancelledAt time.Time) *Response {
	return &Response{
		ID:              reservationID,
		Status:          string(status),
		CancellationFee: fee.String(),
		Refund:          refund.String(),
		Policy:          policy,
		CancelledAt:     cancelledAt,
	}
}
