package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type UserRepository interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
}

type UserService interface {
	UpsertProfile(ctx context.Context, email, name, image string) (*domain.UserProfile, error)
	GetProfile(ctx context.Context, email string) (*domain.UserProfile, error)
}
