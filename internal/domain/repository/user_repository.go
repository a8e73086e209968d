package repository

import (
	"context"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	// FindByEmail devolve (nil, nil) quando o email não existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
