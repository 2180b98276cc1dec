package pricing

import "errors"

var (
	// ErrTierNotFound возвращается, когда тариф не найден
	ErrTierNotFound = errors.New("pricing.repository: pricing tier not found")

	// ErrDuplicateActiveTier возвращается при нарушении уникальности активного тарифа для типа клиента
	ErrDuplicateActiveTier = errors.New("pricing.repository: active tier for customer type already exists")

	// ErrTierInUse возвращается при удалении тарифа, на который ссылаются бронирования
	ErrTierInUse = errors.New("pricing.repository: pricing tier is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
