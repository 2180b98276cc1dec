package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/auth"
	"github.com/m04kA/SMC-ShuttleService/internal/service/auth/models"
)

const (
	msgMissingToken = "требуется токен администратора"
	msgInvalidToken = "токен недействителен или истек"
	msgForbidden    = "требуются права администратора"
)

// Authorizer проверяет токен администратора
type Authorizer interface {
	Authorize(token string) (*models.Principal, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type principalKey struct{}

// AdminAuth пропускает только запросы с валидным Bearer токеном роли admin
func AdminAuth(authorizer Authorizer, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := authorizer.Authorize(strings.TrimSpace(token))
			if err != nil {
				if errors.Is(err, auth.ErrForbidden) {
					logger.Warn("%s %s - Token without admin role", r.Method, r.URL.Path)
					handlers.RespondForbidden(w, msgForbidden)
					return
				}
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal возвращает администратора, прошедшего AdminAuth
func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*models.Principal)
	return p, ok
}
