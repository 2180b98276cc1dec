package pricing

import "errors"

var (
	// ErrTierNotFound возвращается, когда тариф не найден
	ErrTierNotFound = errors.New("pricing tier not found")

	// ErrDuplicateActiveTier возвращается, когда для типа клиента уже есть активный тариф
	ErrDuplicateActiveTier = errors.New("an active pricing tier for this customer type already exists")

	// ErrTierInUse возвращается при удалении тарифа, по которому оформлены бронирования
	ErrTierInUse = errors.New("pricing tier is used by bookings, deactivate it instead")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
