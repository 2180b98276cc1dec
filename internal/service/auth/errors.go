package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken возвращается при неверном, просроченном или чужом токене
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden возвращается, когда у токена нет роли администратора
	ErrForbidden = errors.New("admin role required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
