package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ShuttleService/internal/service/auth/models"
)

const issuer = "smc-shuttle-service"

// Admin учетная запись администратора (пароль в виде bcrypt-хэша)
type Admin struct {
	Username     string
	PasswordHash string
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service сервис аутентификации администраторов
type Service struct {
	admins       map[string]string
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(admins []Admin, secret string, ttl time.Duration, logger Logger) *Service {
	byName := make(map[string]string, len(admins))
	for _, a := range admins {
		byName[a.Username] = a.PasswordHash
	}

	return &Service{
		admins:       byName,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет учетные данные и выдает токен HS256 с ролью admin
func (s *Service) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	hash, ok := s.admins[req.Username]
	if !ok || req.Password == "" {
		s.logger.Warn("Login: failed login attempt for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: failed login attempt for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   req.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin %q logged in", req.Username)
	return &models.LoginResponse{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}

// Authorize проверяет токен и требует роль admin
func (s *Service) Authorize(tokenString string) (*models.Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if c.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	return &models.Principal{Username: c.Subject, Role: c.Role}, nil
}
