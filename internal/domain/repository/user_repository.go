package repository

import (
	"context"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Métodos de leitura retornam (nil, nil) quando não há registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
