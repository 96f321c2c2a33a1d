package cancellation

import "errors"

var (
	// ErrEmptyTable возвращается при создании пустой таблицы правил
	ErrEmptyTable = errors.New("cancellation: fee table must not be empty")

	// ErrInvalidRule возвращается при создании правила с некорректной конфигурацией
	ErrInvalidRule = errors.New("cancellation: invalid fee rule")

	// ErrCalculationFailed возвращается при ошибке вычисления комиссии
	ErrCalculationFailed = errors.New("cancellation: failed to calculate fee")

	// ErrUnknownPolicy возвращается, когда имя политики не распознано
	ErrUnknownPolicy = errors.New("cancellation: unknown policy name")
)
