package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotMarkPaid возвращается, когда бронирование нельзя отметить оплаченным
	ErrCannotMarkPaid = errors.New("booking cannot be marked as paid")

	// ErrSoldOut возвращается, когда оплата неподтвержденной брони превысила бы вместимость рейса
	ErrSoldOut = errors.New("departure is sold out")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
