package route

import "errors"

var (
	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("route.repository: route not found")

	// ErrRouteNameTaken возвращается при нарушении уникальности имени маршрута
	ErrRouteNameTaken = errors.New("route.repository: route name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("route.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("route.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("route.repository: failed to scan row")
)
