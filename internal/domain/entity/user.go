package entity

import "time"

// User representa a dona do salão (único perfil de acesso do app).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
