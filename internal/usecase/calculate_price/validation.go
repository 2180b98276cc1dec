package calculate_price

import (
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// toQuoteInput валидирует запрос и подставляет значения по умолчанию.
// Неизвестный тип клиента не ошибка: цена берется по тарифу REGULAR
func toQuoteInput(req *Request) (domain.QuoteInput, error) {
	in := domain.QuoteInput{
		CustomerType:   domain.RequestedCustomerType(req.CustomerType),
		PassengerCount: req.PassengerCount,
		ExtraLuggage:   req.ExtraLuggage,
		Pets:           req.Pets,
		RoundTrip:      req.RoundTrip,
	}

	if in.PassengerCount == 0 {
		in.PassengerCount = 1
	}
	if in.PassengerCount < domain.MinPassengersPerBooking || in.PassengerCount > domain.MaxPassengersPerBooking {
		return in, fmt.Errorf("%w: passengerCount must be between %d and %d",
			ErrInvalidInput, domain.MinPassengersPerBooking, domain.MaxPassengersPerBooking)
	}
	if in.ExtraLuggage < 0 || in.ExtraLuggage > domain.MaxExtraLuggage {
		return in, fmt.Errorf("%w: extraLuggage must be between 0 and %d", ErrInvalidInput, domain.MaxExtraLuggage)
	}
	if in.Pets < 0 || in.Pets > domain.MaxPets {
		return in, fmt.Errorf("%w: pets must be between 0 and %d", ErrInvalidInput, domain.MaxPets)
	}

	return in, nil
}
