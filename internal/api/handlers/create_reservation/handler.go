package create_reservation

import (
	"errors"
	"net/http"

	"github.com/junhyeong9812/hexapass-sub002/internal/api/handlers"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	createReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgMemberNotFound     = "участник не найден"
	msgSlotConflict       = "слот уже занят другим бронированием"
)

type Handler struct {
	usecase CreateReservationUseCase
	logger  Logger
}

func NewHandler(usecase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest(memberID))
	if err != nil {
		switch {
		case errors.Is(err, createReservationUC.ErrInvalidInput),
			errors.Is(err, createReservationUC.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid input: member_id=%d, error=%v", memberID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservationUC.ErrMemberNotFound):
			h.logger.Warn("POST /reservations - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, createReservationUC.ErrNotEligible):
			h.logger.Warn("POST /reservations - Not eligible: member_id=%d, error=%v", memberID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, createReservationUC.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: member_id=%d, resource_id=%d",
				memberID, req.ResourceID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, member_id=%d", resp.ID, memberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
