package get_routes

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

const (
	msgInvalidIncludeSchedules = "параметр includeSchedules должен быть true или false"
)

type Handler struct {
	useCase GetRoutesUseCase
	logger  Logger
}

func NewHandler(useCase GetRoutesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/routes
// Query params: includeSchedules (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("includeSchedules"))
	if err != nil {
		h.logger.Warn("GET /routes - Invalid includeSchedules: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeSchedules)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /routes - Failed to get routes: include_schedules=%t, error=%v",
			useCaseReq.IncludeSchedules, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /routes - Routes retrieved successfully: count=%d", len(result.Routes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
