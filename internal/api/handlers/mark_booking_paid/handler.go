package mark_booking_paid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotMarkPaid   = "бронирование нельзя отметить оплаченным"
	msgSoldOut          = "на рейсе не осталось свободных мест"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/paid - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.MarkPaid(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/paid - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrCannotMarkPaid):
			h.logger.Warn("PATCH /admin/bookings/{id}/paid - Invalid status transition: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotMarkPaid)
		case errors.Is(err, bookings.ErrSoldOut):
			h.logger.Warn("PATCH /admin/bookings/{id}/paid - Departure sold out: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSoldOut)
		default:
			h.logger.Error("PATCH /admin/bookings/{id}/paid - Failed to mark paid: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/paid - Booking marked paid: booking_id=%d, reference=%s",
		bookingID, booking.Reference)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
