package departure

import "errors"

var (
	// ErrDepartureNotFound возвращается, когда рейс не найден
	ErrDepartureNotFound = errors.New("departure.repository: departure not found")

	// ErrNotEnoughSeats возвращается, когда условное резервирование мест не затронуло ни одной строки:
	// мест не хватает или рейс не в статусе SCHEDULED
	ErrNotEnoughSeats = errors.New("departure.repository: not enough seats")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("departure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("departure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("departure.repository: failed to scan row")
)
