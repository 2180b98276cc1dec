package cache

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("cache: failed to write")

	// ErrCacheInvalidate возвращается при ошибке смены поколения ключей
	ErrCacheInvalidate = errors.New("cache: failed to invalidate")
)
