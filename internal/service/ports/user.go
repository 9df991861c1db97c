package ports

import (
	"context"
	"time"

	"github.com/cachinadev/turismo-app/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
