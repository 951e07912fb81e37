package auth

import (
	"context"

	"festivalapi/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *domain.Session) error
	Revoke(ctx context.Context, jti string) error
}
