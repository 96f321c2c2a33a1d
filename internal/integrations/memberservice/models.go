package memberservice

// Member модель участника из MemberService
type Member struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	PlanName              string `json:"plan_name"`
	PlanActive            bool   `json:"plan_active"`
	ConcurrentLimit       int    `json:"concurrent_limit"` // 0 = без ограничений
	CompletedReservations int    `json:"completed_reservations"`
	CancellationCount     int    `json:"cancellation_count"`
}

// IsFirstReservation возвращает true, если у участника ещё не было завершённых бронирований
func (m *Member) IsFirstReservation() bool {
	return m.CompletedReservations == 0
}

// IsFirstCancellation возвращает true, если участник ещё ни разу не отменял бронирование
func (m *Member) IsFirstCancellation() bool {
	return m.CancellationCount == 0
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
