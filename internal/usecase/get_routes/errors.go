package get_routes

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_routes: internal error")
