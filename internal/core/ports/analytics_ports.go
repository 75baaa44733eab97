package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type AnalyticsService interface {
	OwnerAnalytics(ctx context.Context, ownerEmail string) (*domain.OwnerAnalytics, error)
}

type SearchService interface {
	Search(ctx context.Context, query string) ([]domain.EnrichedQuestionnaire, error)
	Trends(ctx context.Context, limit int) ([]domain.TrendWord, error)
}
