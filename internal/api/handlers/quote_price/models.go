package quote_price

import (
	"time"

	quotePriceUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	ResourceID int64     `json:"resourceId"`
	ProviderID int64     `json:"providerId"`
	SlotStart  time.Time `json:"slotStart"`
	SlotEnd    time.Time `json:"slotEnd"`
	BasePrice  string    `json:"basePrice"`
	Currency   string    `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *QuotePriceRequest) ToUseCaseRequest(memberID int64) quotePriceUC.Request {
	return quotePriceUC.Request{
		MemberID:   memberID,
		ResourceID: r.ResourceID,
		ProviderID: r.ProviderID,
		SlotStart:  r.SlotStart,
		SlotEnd:    r.SlotEnd,
		BasePrice:  r.BasePrice,
		Currency:   r.Currency,
	}
}

// FeePreview комиссия за отмену при заданном запасе времени
type FeePreview struct {
	LeadTime string `json:"leadTime"`
	Fee      string `json:"fee"`
}

// QuotePriceResponse HTTP response model
type QuotePriceResponse struct {
	Slot               string       `json:"slot"`
	OriginalPrice      string       `json:"originalPrice"`
	FinalPrice         string       `json:"finalPrice"`
	Discounts          []string     `json:"discounts,omitempty"`
	CancellationPolicy string       `json:"cancellationPolicy"`
	FeePreview         []FeePreview `json:"feePreview"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *quotePriceUC.Response) *QuotePriceResponse {
	preview := make([]FeePreview, 0, len(resp.FeePreview))
	for _, p := range resp.FeePreview {
		preview = append(preview, FeePreview{
			LeadTime: p.LeadTime,
			Fee:      p.Fee,
		})
	}

	return &QuotePriceResponse{
		Slot:               resp.Slot,
		OriginalPrice:      resp.OriginalPrice,
		FinalPrice:         resp.FinalPrice,
		Discounts:          resp.Discounts,
		CancellationPolicy: resp.CancellationPolicy,
		FeePreview:         preview,
	}
}
