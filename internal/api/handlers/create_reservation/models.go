package create_reservation

import (
	"time"

	createReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID   int64     `json:"resourceId"`
	ProviderID   int64     `json:"providerId"`
	ResourceName string    `json:"resourceName"`
	SlotStart    time.Time `json:"slotStart"`
	SlotEnd      time.Time `json:"slotEnd"`
	BasePrice    string    `json:"basePrice"`
	Currency     string    `json:"currency"`
	Notes        *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateReservationRequest) ToUseCaseRequest(memberID int64) createReservationUC.Request {
	return createReservationUC.Request{
		MemberID:     memberID,
		ResourceID:   r.ResourceID,
		ProviderID:   r.ProviderID,
		ResourceName: r.ResourceName,
		SlotStart:    r.SlotStart,
		SlotEnd:      r.SlotEnd,
		BasePrice:    r.BasePrice,
		Currency:     r.Currency,
		Notes:        r.Notes,
	}
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	Slot          string    `json:"slot"`
	SlotStart     time.Time `json:"slotStart"`
	SlotEnd       time.Time `json:"slotEnd"`
	OriginalPrice string    `json:"originalPrice"`
	FinalPrice    string    `json:"finalPrice"`
	Discounts     []string  `json:"discounts,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *createReservationUC.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:            resp.ID,
		Status:        resp.Status,
		Slot:          resp.Slot,
		SlotStart:     resp.SlotStart,
		SlotEnd:       resp.SlotEnd,
		OriginalPrice: resp.OriginalPrice,
		FinalPrice:    resp.FinalPrice,
		Discounts:     resp.Discounts,
		CreatedAt:     resp.CreatedAt,
	}
}
