package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автобус не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleInUse возвращается при удалении автобуса, на который ссылаются расписания или рейсы
	ErrVehicleInUse = errors.New("vehicle is assigned to schedules or departures, deactivate it instead")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
