package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ShuttleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные бронирования"
	msgDepartureNotFound    = "рейс не найден"
	msgDepartureNotBookable = "рейс закрыт для бронирования"
	msgDepartureInPast      = "рейс уже отправился"
	msgSoldOut              = "на этот рейс не осталось достаточного количества мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Гость оформляет бронь без X-User-ID
	userID := middleware.UserIDPtr(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSoldOut):
			h.logger.Warn("POST /bookings - Sold out: departure_id=%d, passengers=%d", req.DepartureID, req.PassengerCount)
			handlers.RespondConflict(w, msgSoldOut)

		case errors.Is(err, createBooking.ErrDepartureNotFound):
			h.logger.Warn("POST /bookings - Departure not found: departure_id=%d", req.DepartureID)
			handlers.RespondNotFound(w, msgDepartureNotFound)

		case errors.Is(err, createBooking.ErrDepartureNotBookable):
			h.logger.Warn("POST /bookings - Departure not bookable: departure_id=%d", req.DepartureID)
			handlers.RespondBadRequest(w, msgDepartureNotBookable)

		case errors.Is(err, createBooking.ErrDepartureInPast):
			h.logger.Warn("POST /bookings - Departure in past: departure_id=%d", req.DepartureID)
			handlers.RespondBadRequest(w, msgDepartureInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: departure_id=%d, error=%v", req.DepartureID, err)
			handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, createBooking.ErrInvalidInput))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: departure_id=%d, error=%v", req.DepartureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, departure_id=%d",
		result.ID, result.Reference, result.DepartureID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
