package reservation

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// scanReservation собирает доменную модель из одной строки БД
// scan - это row.Scan или rows.Scan
func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var (
		res                domain.Reservation
		slotStart, slotEnd time.Time
		originalPrice      string
		finalPrice         string
		currency           string
		cancellationFee    sql.NullString
		cancelledAt        sql.NullTime
		createdAt          sql.NullTime
		updatedAt          sql.NullTime
	)

	err := scan(
		&res.ID,
		&res.MemberID,
		&res.ResourceID,
		&res.ProviderID,
		&slotStart,
		&slotEnd,
		&res.Status,
		&res.ResourceName,
		&res.PlanName,
		&originalPrice,
		&finalPrice,
		&currency,
		&res.Notes,
		&cancellationFee,
		&res.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Восстанавливаем value objects через валидирующие фабрики:
	// строка, не проходящая доменные инварианты, означает повреждённые данные
	slot, err := domain.NewTimeSlot(slotStart, slotEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: slot: %v", ErrInvalidRow, err)
	}
	res.Slot = slot

	res.OriginalPrice, err = domain.NewMoneyFromString(originalPrice, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: original price: %v", ErrInvalidRow, err)
	}
	res.FinalPrice, err = domain.NewMoneyFromString(finalPrice, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: final price: %v", ErrInvalidRow, err)
	}

	if cancellationFee.Valid {
		fee, err := domain.NewMoneyFromString(cancellationFee.String, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: cancellation fee: %v", ErrInvalidRow, err)
		}
		res.CancellationFee = &fee
	}
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations собирает список бронирований из результата запроса
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows iteration: %v", ErrExecQuery, err)
	}

	return reservations, nil
}
