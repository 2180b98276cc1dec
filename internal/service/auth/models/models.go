package models

import "time"

// RoleAdmin роль администратора в токене
const RoleAdmin = "admin"

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Principal владелец проверенного токена
type Principal struct {
	Username string
	Role     string
}
