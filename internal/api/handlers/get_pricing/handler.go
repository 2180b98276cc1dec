package get_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-ShuttleService/internal/usecase/calculate_price"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing
// Query params: customerType, passengerCount, extraLuggage, pets, roundTrip (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /pricing - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /pricing - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidQuery, err, calculatePrice.ErrInvalidInput))

		default:
			h.logger.Error("GET /pricing - Failed to calculate price: query=%s, error=%v", r.URL.RawQuery, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing - Price calculated: customer_type=%s, passengers=%d, total=%.0f",
		result.Quote.CustomerType, result.Quote.PassengerCount, result.Quote.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
