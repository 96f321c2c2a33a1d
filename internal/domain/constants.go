package domain

// Default configuration values
const (
	DefaultCurrency         = "KRW"
	DefaultDiscountPriority = 100
)

// Business validation constants
const (
	MinReservationMinutes       = 10
	MaxReservationMinutes       = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// MoneyScale количество знаков после запятой при делении денежных сумм
const MoneyScale = 2

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при подсчёте пересечений со слотом
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByMember,
	StatusCancelledByProvider,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
