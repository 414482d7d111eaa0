package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
