package create_booking

import "errors"

var (
	// ErrDepartureNotFound возвращается, когда рейс не найден
	ErrDepartureNotFound = errors.New("create_booking: departure not found")

	// ErrDepartureNotBookable возвращается, когда рейс не в статусе SCHEDULED
	ErrDepartureNotBookable = errors.New("create_booking: departure is not open for booking")

	// ErrDepartureInPast возвращается при попытке забронировать прошедший рейс
	ErrDepartureInPast = errors.New("create_booking: departure date is in the past")

	// ErrSoldOut возвращается, когда свободных мест меньше, чем пассажиров
	ErrSoldOut = errors.New("create_booking: not enough seats available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
