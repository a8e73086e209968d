package dto

import "time"

// LoginRequest corpo de POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse identidade devolvida pelo gate de sessão.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse resposta de login: token de sessão + identidade.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
