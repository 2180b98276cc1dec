package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает тип клиента
func validateRequest(req *Request) (domain.CustomerType, error) {
	if req.DepartureID <= 0 {
		return "", fmt.Errorf("%w: departureId must be positive", ErrInvalidInput)
	}

	if req.PassengerCount < domain.MinPassengersPerBooking || req.PassengerCount > domain.MaxPassengersPerBooking {
		return "", fmt.Errorf("%w: passengerCount must be between %d and %d",
			ErrInvalidInput, domain.MinPassengersPerBooking, domain.MaxPassengersPerBooking)
	}

	if req.ExtraLuggage < 0 || req.ExtraLuggage > domain.MaxExtraLuggage {
		return "", fmt.Errorf("%w: extraLuggage must be between 0 and %d", ErrInvalidInput, domain.MaxExtraLuggage)
	}

	if req.Pets < 0 || req.Pets > domain.MaxPets {
		return "", fmt.Errorf("%w: pets must be between 0 and %d", ErrInvalidInput, domain.MaxPets)
	}

	// Неизвестный тип клиента тарифицируется как REGULAR
	customerType := domain.RequestedCustomerType(req.CustomerType)

	// Гость обязан оставить имя и email, зарегистрированный пользователь идентифицируется по ID
	if req.UserID != nil {
		if *req.UserID <= 0 {
			return "", fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
		}
		return customerType, nil
	}

	if req.GuestName == nil || strings.TrimSpace(*req.GuestName) == "" {
		return "", fmt.Errorf("%w: guestName is required for guest bookings", ErrInvalidInput)
	}
	if req.GuestEmail == nil || strings.TrimSpace(*req.GuestEmail) == "" {
		return "", fmt.Errorf("%w: guestEmail is required for guest bookings", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(*req.GuestEmail); err != nil {
		return "", fmt.Errorf("%w: invalid guestEmail: %v", ErrInvalidInput, err)
	}

	return customerType, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.TruncateToDay(date).Before(domain.TruncateToDay(now))
}
