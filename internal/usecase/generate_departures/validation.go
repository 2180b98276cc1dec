package generate_departures

import (
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := domain.TruncateToDay(req.StartDate)
	end := domain.TruncateToDay(req.EndDate)
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > domain.MaxGenerateRangeDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, domain.MaxGenerateRangeDays)
	}

	if req.Capacity != nil && (*req.Capacity < domain.MinCapacity || *req.Capacity > domain.MaxCapacity) {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	return nil
}

// validateSchedule проверяет, что по расписанию можно создавать рейсы
func validateSchedule(s *domain.Schedule) string {
	switch {
	case s.Route == nil:
		return "route not found"
	case !s.Route.IsActive:
		return fmt.Sprintf("route %d is inactive", s.Route.ID)
	case !s.EveryDay && !domain.IsValidDayOfWeek(s.DayOfWeek):
		return fmt.Sprintf("invalid day of week %d", s.DayOfWeek)
	case s.DepartureTime.Validate() != nil:
		return fmt.Sprintf("invalid departure time %q", s.DepartureTime.String())
	}
	return ""
}

// resolveCapacity порядок: переопределение, автобус, расписание, значение по умолчанию
func resolveCapacity(override *int, s *domain.Schedule, defaultCapacity int) int {
	if override != nil {
		return *override
	}
	if s.VehicleCapacity != nil && *s.VehicleCapacity > 0 {
		return *s.VehicleCapacity
	}
	if s.Capacity > 0 {
		return s.Capacity
	}
	return defaultCapacity
}
