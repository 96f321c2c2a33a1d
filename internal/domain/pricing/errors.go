package pricing

import "errors"

var (
	// ErrInvalidPolicy возвращается при создании политики с некорректной конфигурацией
	ErrInvalidPolicy = errors.New("pricing: invalid policy configuration")

	// ErrApplyFailed возвращается при ошибке применения политики к цене
	ErrApplyFailed = errors.New("pricing: failed to apply policy")
)
