package vehicle

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автобус не найден
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrVehicleInUse возвращается при удалении автобуса, назначенного на рейсы или расписания
	ErrVehicleInUse = errors.New("vehicle.repository: vehicle is referenced by schedules or departures")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
