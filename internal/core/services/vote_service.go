package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

type voteService struct {
	responseRepo ports.ResponseRepository
	log          logrus.FieldLogger
	metrics      *telemetry.Metrics
	now          func() time.Time
}

func NewVoteService(responseRepo ports.ResponseRepository, log logrus.FieldLogger, metrics *telemetry.Metrics) ports.VoteService {
	return &voteService{
		responseRepo: responseRepo,
		log:          logging.OrDiscard(log),
		metrics:      metrics,
		now:          time.Now,
	}
}

// RecordVote appends a response. Neither the questionnaire nor the answer is
// checked against existing data; the aggregation tolerates both being stale.
func (s *voteService) RecordVote(ctx context.Context, questionnaireID, answer string) (*domain.Response, error) {
	if questionnaireID == "" || answer == "" {
		return nil, domain.ErrInvalidVote
	}

	response := &domain.Response{
		ID:              uuid.NewString(),
		QuestionnaireID: questionnaireID,
		Answer:          answer,
		SubmittedAt:     domain.FormatTimestamp(s.now()),
	}

	if err := s.responseRepo.Append(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.metrics.VoteRecorded()
	s.log.WithField("questionnaire_id", questionnaireID).Debug("vote recorded")
	return response, nil
}
