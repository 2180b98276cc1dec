package admin_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

const (
	msgInvalidTierID       = "некорректный ID тарифа"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные тарифа"
	msgTierNotFound        = "тариф не найден"
	msgDuplicateActiveTier = "активный тариф для этого типа клиента уже существует"
	msgTierInUse           = "тариф используется в бронированиях, вместо удаления деактивируйте его"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateTier POST /api/v1/admin/pricing-tiers
func (h *Handler) CreateTier(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/pricing-tiers"

	var req models.CreateTierRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tier, err := h.service.CreateTier(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, 0, err)
		return
	}

	h.logger.Info("%s - Tier created: tier_id=%d, customer_type=%s, base_price=%.2f",
		endpoint, tier.ID, tier.CustomerType, tier.BasePrice)
	handlers.RespondJSON(w, http.StatusCreated, tier)
}

// DeleteTier DELETE /api/v1/admin/pricing-tiers/{tierId}
func (h *Handler) DeleteTier(w http.ResponseWriter, r *http.Request) {
	const endpoint = "DELETE /admin/pricing-tiers/{id}"

	tierID, err := handlers.PathInt64(mux.Vars(r), "tierId")
	if err != nil {
		h.logger.Warn("%s - Invalid tier ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidTierID)
		return
	}

	if err := h.service.DeleteTier(r.Context(), tierID); err != nil {
		h.respondError(w, endpoint, tierID, err)
		return
	}

	h.logger.Info("%s - Tier deleted: tier_id=%d", endpoint, tierID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, endpoint string, tierID int64, err error) {
	switch {
	case errors.Is(err, pricing.ErrTierNotFound):
		h.logger.Warn("%s - Tier not found: tier_id=%d", endpoint, tierID)
		handlers.RespondNotFound(w, msgTierNotFound)

	case errors.Is(err, pricing.ErrDuplicateActiveTier):
		h.logger.Warn("%s - Duplicate active tier", endpoint)
		handlers.RespondBadRequest(w, msgDuplicateActiveTier)

	case errors.Is(err, pricing.ErrTierInUse):
		h.logger.Warn("%s - Tier in use: tier_id=%d", endpoint, tierID)
		handlers.RespondBadRequest(w, msgTierInUse)

	case errors.Is(err, pricing.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", endpoint, err)
		handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, pricing.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: tier_id=%d, error=%v", endpoint, tierID, err)
		handlers.RespondInternalError(w)
	}
}
