package admin_login

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/auth"
	"github.com/m04kA/SMC-ShuttleService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "требуются имя пользователя и пароль"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.logger.Warn("POST /admin/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to issue token: username=%s, error=%v", req.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Token issued: username=%s, expires_at=%s",
		req.Username, token.ExpiresAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, token)
}
