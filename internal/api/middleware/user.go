package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

// HeaderUserID заголовок с ID зарегистрированного пользователя.
// Проставляется провайдером учетных записей, гости его не передают
const HeaderUserID = "X-User-ID"

const msgInvalidUserID = "некорректный заголовок X-User-ID"

type userIDKey struct{}

// OptionalUser кладет ID пользователя в контекст, если заголовок передан.
// Некорректное значение отклоняется, отсутствие заголовка означает гостя
func OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// UserIDPtr ID пользователя или nil для гостя
func UserIDPtr(ctx context.Context) *int64 {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &id
}
