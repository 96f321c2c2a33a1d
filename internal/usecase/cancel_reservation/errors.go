package cancel_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда пользователь не имеет прав на отмену
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrAlreadyFinished возвращается, когда бронирование уже отменено или завершено
	ErrAlreadyFinished = errors.New("cancel_reservation: reservation is already cancelled or finished")

	// ErrCancellationNotAllowed возвращается, когда политика запрещает отмену.
	// Текст ошибки содержит причину запрета
	ErrCancellationNotAllowed = errors.New("cancel_reservation: cancellation is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
