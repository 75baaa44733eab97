package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type ResponseRepository interface {
	Append(ctx context.Context, r *domain.Response) error
	List(ctx context.Context) ([]domain.Response, error)
}

type VoteService interface {
	RecordVote(ctx context.Context, questionnaireID, answer string) (*domain.Response, error)
}

type LikeService interface {
	// AdjustLike returns the new like count, or nil when the questionnaire does not exist.
	AdjustLike(ctx context.Context, questionnaireID string, increment bool) (*int, error)
}
