package create_reservation

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("create_reservation: member not found")

	// ErrInvalidSlot возвращается при некорректном временном слоте
	ErrInvalidSlot = errors.New("create_reservation: invalid time slot")

	// ErrNotEligible возвращается, когда запрос не проходит правила допуска
	// Текст ошибки содержит причину отказа для пользователя
	ErrNotEligible = errors.New("create_reservation: reservation is not eligible")

	// ErrSlotConflict возвращается, когда слот пересекается с существующим бронированием
	ErrSlotConflict = errors.New("create_reservation: slot conflicts with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
