package update_fees

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные значения сборов"
)

type Handler struct {
	service FeesService
	logger  Logger
}

func NewHandler(service FeesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings/fees
// Переданные поля перезаписываются, отсутствующие остаются без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateFeesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/fees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fees, err := h.service.UpdateFees(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/fees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, pricing.ErrInvalidInput))
		default:
			h.logger.Error("PUT /admin/settings/fees - Failed to update fees: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/fees - Fees updated successfully")
	handlers.RespondJSON(w, http.StatusOK, fees)
}
