package routes

import "errors"

var (
	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("route not found")

	// ErrRouteNameTaken возвращается, когда маршрут с таким именем уже существует
	ErrRouteNameTaken = errors.New("route with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
