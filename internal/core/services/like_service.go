package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

type likeService struct {
	repo    ports.QuestionnaireRepository
	log     logrus.FieldLogger
	metrics *telemetry.Metrics
}

func NewLikeService(repo ports.QuestionnaireRepository, log logrus.FieldLogger, metrics *telemetry.Metrics) ports.LikeService {
	return &likeService{
		repo:    repo,
		log:     logging.OrDiscard(log),
		metrics: metrics,
	}
}

// AdjustLike is a plain read-modify-write with no compare-and-swap: two
// concurrent calls on the same questionnaire can read the same value and one of
// the updates is lost. The stored value never goes below zero.
func (s *likeService) AdjustLike(ctx context.Context, questionnaireID string, increment bool) (*int, error) {
	rec, err := s.repo.GetByID(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to read likes: %w", err)
	}
	if rec == nil {
		s.metrics.LikeAdjusted(increment, false)
		return nil, nil
	}

	likes := domain.ParseLikes(rec.Likes)
	if increment {
		likes++
	} else {
		likes = max(0, likes-1)
	}

	if err := s.repo.SetLikes(ctx, questionnaireID, likes); err != nil {
		return nil, fmt.Errorf("failed to store likes: %w", err)
	}

	s.metrics.LikeAdjusted(increment, true)
	s.log.WithFields(logrus.Fields{
		"questionnaire_id": questionnaireID,
		"likes":            likes,
	}).Debug("likes adjusted")
	return &likes, nil
}
