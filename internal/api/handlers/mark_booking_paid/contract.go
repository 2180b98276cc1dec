package mark_booking_paid

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/bookings/models"
)

type BookingService interface {
	MarkPaid(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
