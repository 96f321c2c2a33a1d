package domain

import "errors"

var (
	// ErrNegativeAmount возвращается, когда операция дала бы отрицательную сумму денег
	ErrNegativeAmount = errors.New("domain: money amount cannot be negative")

	// ErrCurrencyRequired возвращается при создании Money без кода валюты
	ErrCurrencyRequired = errors.New("domain: currency code is required")

	// ErrCurrencyMismatch возвращается при операции над Money с разными валютами
	ErrCurrencyMismatch = errors.New("domain: currency codes do not match")

	// ErrInvalidRate возвращается, когда ставка выходит за пределы [0, 1]
	ErrInvalidRate = errors.New("domain: rate must be between 0 and 1")

	// ErrNegativeFactor возвращается при умножении Money на отрицательный множитель
	ErrNegativeFactor = errors.New("domain: multiplication factor cannot be negative")

	// ErrDivisionByZero возвращается при делении Money на ноль
	ErrDivisionByZero = errors.New("domain: division by zero")

	// ErrSlotTimeRequired возвращается при создании слота с нулевым временем
	ErrSlotTimeRequired = errors.New("domain: slot start and end are required")

	// ErrInvalidSlotBounds возвращается, когда начало слота не раньше конца
	ErrInvalidSlotBounds = errors.New("domain: slot start must be before end")

	// ErrSlotCrossesMidnight возвращается, когда слот выходит за пределы одной даты
	ErrSlotCrossesMidnight = errors.New("domain: slot must start and end on the same date")

	// ErrNonPositiveDuration возвращается при неположительной длительности слота
	ErrNonPositiveDuration = errors.New("domain: duration must be positive")

	// ErrNegativeAdjustment возвращается, когда extend/shorten вызваны с отрицательными минутами
	ErrNegativeAdjustment = errors.New("domain: adjustment minutes cannot be negative")

	// ErrRangeDateRequired возвращается при создании диапазона с нулевой датой
	ErrRangeDateRequired = errors.New("domain: range start and end are required")

	// ErrInvalidRangeBounds возвращается, когда начало диапазона позже конца
	ErrInvalidRangeBounds = errors.New("domain: range start must not be after end")
)
