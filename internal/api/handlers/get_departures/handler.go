package get_departures

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_departures"
)

const (
	msgInvalidQuery = "некорректные параметры запроса: date ожидается в формате YYYY-MM-DD, routeId - число"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDeparturesUseCase
	logger  Logger
}

func NewHandler(useCase GetDeparturesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/departures
// Query params: date (optional, YYYY-MM-DD), routeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /departures - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDepartures.ErrInvalidInput):
			h.logger.Warn("GET /departures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, getDepartures.ErrInvalidInput))

		default:
			h.logger.Error("GET /departures - Failed to get departures: query=%s, error=%v", r.URL.RawQuery, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departures - Departures retrieved successfully: from=%s, to=%s, count=%d",
		result.DateFrom.Format(domain.DateFormat), result.DateTo.Format(domain.DateFormat), len(result.Departures))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
