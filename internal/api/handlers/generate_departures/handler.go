package generate_departures

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	generateDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/generate_departures"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректный период генерации"
)

type Handler struct {
	useCase GenerateDeparturesUseCase
	logger  Logger
}

func NewHandler(useCase GenerateDeparturesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/generate-departures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/generate-departures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/generate-departures - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	h.respond(w, "POST /admin/generate-departures", result, err)
}

// HandleQuick POST /api/v1/admin/departures/quick-generate
// Генерирует настроенное окно, начиная с сегодняшнего дня
func (h *Handler) HandleQuick(w http.ResponseWriter, r *http.Request) {
	var req QuickGenerateRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/departures/quick-generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteRollingWindow(r.Context(), req.Capacity)
	h.respond(w, "POST /admin/departures/quick-generate", result, err)
}

func (h *Handler) respond(w http.ResponseWriter, endpoint string, result *generateDepartures.Response, err error) {
	if err != nil {
		switch {
		case errors.Is(err, generateDepartures.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", endpoint, err)
			handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, generateDepartures.ErrInvalidInput))

		default:
			h.logger.Error("%s - Failed to generate departures: error=%v", endpoint, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Departures generated: created=%d, skipped_existing=%d, failed=%d, problems=%d",
		endpoint, result.Created, result.SkippedExisting, result.Failed, len(result.Problems))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
