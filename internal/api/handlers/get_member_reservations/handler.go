package get_member_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/junhyeong9812/hexapass-sub002/internal/api/handlers"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	"github.com/junhyeong9812/hexapass-sub002/internal/service/reservations"
	"github.com/junhyeong9812/hexapass-sub002/internal/service/reservations/models"
)

const (
	msgInvalidMemberID = "некорректный ID участника"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgUnauthorized    = "пользователь не аутентифицирован"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/members/{memberId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /members/{id}/reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	memberID, err := strconv.ParseInt(vars["memberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /members/{id}/reservations - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	// Участник видит только собственную историю
	if memberID != userID {
		h.logger.Warn("GET /members/{id}/reservations - Access denied: member_id=%d, user_id=%d",
			memberID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetMemberReservationsRequest{
		MemberID: memberID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetMemberReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /members/{id}/reservations - Invalid status filter: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /members/{id}/reservations - Failed to fetch reservations: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/reservations - Fetched %d reservations: member_id=%d",
		len(resp.Reservations), memberID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
