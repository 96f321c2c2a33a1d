package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/junhyeong9812/hexapass-sub002/internal/api/handlers"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	cancelReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/cancel_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnauthorized         = "пользователь не аутентифицирован"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgAlreadyFinished      = "бронирование уже отменено или завершено"
)

type Handler struct {
	usecase CancelReservationUseCase
	logger  Logger
}

func NewHandler(usecase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Тело запроса опционально: отмена без причины допустима
	var req CancelReservationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	resp, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, cancelReservationUC.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cancelReservationUC.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservationUC.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelReservationUC.ErrAlreadyFinished):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Already finished: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgAlreadyFinished)

		case errors.Is(err, cancelReservationUC.ErrCancellationNotAllowed):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cancellation not allowed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondUnprocessable(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%d, user_id=%d, fee=%s",
		reservationID, userID, resp.CancellationFee)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
