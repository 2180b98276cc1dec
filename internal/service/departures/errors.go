package departures

import "errors"

var (
	// ErrDepartureNotFound возвращается, когда рейс не найден
	ErrDepartureNotFound = errors.New("departure not found")

	// ErrVehicleNotFound возвращается, когда автобус не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleInactive возвращается при назначении выведенного из работы автобуса
	ErrVehicleInactive = errors.New("vehicle is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
