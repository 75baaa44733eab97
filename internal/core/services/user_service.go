package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

// MaxProfileImageLength bounds inline-encoded profile images.
const MaxProfileImageLength = 50000

type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) ports.UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) UpsertProfile(ctx context.Context, email, name, image string) (*domain.UserProfile, error) {
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidProfile
	}
	image = strings.TrimSpace(image)
	if len(image) > MaxProfileImageLength {
		return nil, domain.ErrImageTooLarge
	}

	profile := &domain.UserProfile{Email: email, Name: name, Image: image}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return profile, nil
}

// GetProfile returns nil when the user never saved a profile.
func (s *UserService) GetProfile(ctx context.Context, email string) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return profile, nil
}
