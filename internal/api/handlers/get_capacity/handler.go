package get_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getCapacity "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_capacity"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidView = "параметр view должен быть day или week"
)

type Handler struct {
	useCase GetCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedules/capacity
// Query params: date (optional, YYYY-MM-DD), view (day|week, default day)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/schedules/capacity - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCapacity.ErrInvalidInput):
			h.logger.Warn("GET /admin/schedules/capacity - Invalid input: view=%s, error=%v", useCaseReq.View, err)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /admin/schedules/capacity - Failed to get capacity: query=%s, error=%v", r.URL.RawQuery, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/schedules/capacity - Capacity retrieved: view=%s, from=%s, to=%s",
		result.View, result.DateFrom.Format(domain.DateFormat), result.DateTo.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
