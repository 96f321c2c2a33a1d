package get_resource_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/junhyeong9812/hexapass-sub002/internal/api/handlers"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	"github.com/junhyeong9812/hexapass-sub002/internal/service/reservations"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidFilter     = "некорректные параметры фильтра"
	msgUnauthorized      = "пользователь не аутентифицирован"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/resources/{resourceId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /resources/{id}/reservations - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/reservations - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	req, err := parseQuery(r.URL.Query(), resourceID, userID)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/reservations - Invalid filter: resource_id=%d, error=%v",
			resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	resp, err := h.service.GetResourceReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/reservations - Invalid input: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /resources/{id}/reservations - Access denied: resource_id=%d, user_id=%d",
				resourceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /resources/{id}/reservations - Failed to fetch reservations: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/reservations - Fetched %d reservations: resource_id=%d",
		len(resp.Reservations), resourceID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
