package quote_price

import "time"

// Request - запрос на предварительный расчёт цены
type Request struct {
	MemberID   int64
	ResourceID int64
	ProviderID int64
	SlotStart  time.Time
	SlotEnd    time.Time
	BasePrice  string
	Currency   string
}

// Response - результат расчёта цены со скидками и условиями отмены
type Response struct {
	Slot               string
	OriginalPrice      string
	FinalPrice         string
	Discounts          []string
	CancellationPolicy string
	FeePreview         []FeePreview
}

// FeePreview - комиссия за отмену при заданном запасе времени до слота
type FeePreview struct {
	LeadTime string
	Fee      string
}
