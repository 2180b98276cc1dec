package get_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	getSchedules "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_schedules"
)

const (
	msgInvalidRouteID = "некорректный ID маршрута"
)

type Handler struct {
	useCase GetSchedulesUseCase
	logger  Logger
}

func NewHandler(useCase GetSchedulesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params: routeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	routeIDStr := r.URL.Query().Get("routeId")

	useCaseReq, err := ToUseCaseRequest(routeIDStr)
	if err != nil {
		h.logger.Warn("GET /schedules - Invalid route ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSchedules.ErrInvalidInput):
			h.logger.Warn("GET /schedules - Invalid input: route_id=%s, error=%v", routeIDStr, err)
			handlers.RespondBadRequest(w, msgInvalidRouteID)

		default:
			h.logger.Error("GET /schedules - Failed to get schedules: route_id=%s, error=%v", routeIDStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: count=%d", len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
