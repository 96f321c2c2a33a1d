package cancel_reservation

import (
	"time"

	cancelReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason      *string `json:"reason,omitempty"`
	IsEmergency bool    `json:"isEmergency,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CancelReservationRequest) ToUseCaseRequest(reservationID, userID int64) cancelReservationUC.Request {
	return cancelReservationUC.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Reason:        r.Reason,
		IsEmergency:   r.IsEmergency,
	}
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ID              int64     `json:"id"`
	Status          string    `json:"status"`
	CancellationFee string    `json:"cancellationFee"`
	Refund          string    `json:"refund"`
	Policy          string    `json:"policy"`
	CancelledAt     time.Time `json:"cancelledAt"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *cancelReservationUC.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ID:              resp.ID,
		Status:          resp.Status,
		CancellationFee: resp.CancellationFee,
		Refund:          resp.Refund,
		Policy:          resp.Policy,
		CancelledAt:     resp.CancelledAt,
	}
}
