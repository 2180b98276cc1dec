package get_departures

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RouteID != nil && *req.RouteID <= 0 {
		return fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}
	return nil
}
