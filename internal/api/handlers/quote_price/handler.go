package quote_price

import (
	"errors"
	"net/http"

	"github.com/junhyeong9812/hexapass-sub002/internal/api/handlers"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	quotePriceUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgMemberNotFound     = "участник не найден"
)

type Handler struct {
	usecase QuotePriceUseCase
	logger  Logger
}

func NewHandler(usecase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/quote - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest(memberID))
	if err != nil {
		switch {
		case errors.Is(err, quotePriceUC.ErrInvalidInput),
			errors.Is(err, quotePriceUC.ErrInvalidSlot):
			h.logger.Warn("POST /reservations/quote - Invalid input: member_id=%d, error=%v", memberID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quotePriceUC.ErrMemberNotFound):
			h.logger.Warn("POST /reservations/quote - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote price: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/quote - Price quoted: member_id=%d, final=%s", memberID, resp.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
