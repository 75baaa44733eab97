package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/aggregate"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

type questionnaireService struct {
	repo         ports.QuestionnaireRepository
	loader       snapshotLoader
	log          logrus.FieldLogger
	metrics      *telemetry.Metrics
	defaultLimit int
	now          func() time.Time
}

type QuestionnaireServiceConfig struct {
	Questionnaires ports.QuestionnaireRepository
	Responses      ports.ResponseRepository
	Users          ports.UserRepository
	Logger         logrus.FieldLogger
	Metrics        *telemetry.Metrics
	DefaultLimit   int
}

func NewQuestionnaireService(c QuestionnaireServiceConfig) ports.QuestionnaireService {
	return &questionnaireService{
		repo: c.Questionnaires,
		loader: snapshotLoader{
			questionnaires: c.Questionnaires,
			responses:      c.Responses,
			users:          c.Users,
		},
		log:          logging.OrDiscard(c.Logger),
		metrics:      c.Metrics,
		defaultLimit: c.DefaultLimit,
		now:          time.Now,
	}
}

func (s *questionnaireService) Create(ctx context.Context, input ports.CreateQuestionnaireInput) (*domain.QuestionnaireRecord, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}

	seen := make(map[string]struct{}, len(input.Choices))
	choices := make([]string, 0, len(input.Choices))
	for _, c := range input.Choices {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			return nil, domain.ErrDuplicateChoice
		}
		seen[c] = struct{}{}
		choices = append(choices, c)
	}
	if len(choices) < 2 {
		return nil, domain.ErrNotEnoughChoices
	}

	rec := &domain.QuestionnaireRecord{
		ID:         uuid.NewString(),
		Title:      title,
		Choices:    domain.EncodeChoices(choices),
		CreatedAt:  domain.FormatTimestamp(s.now()),
		OwnerEmail: input.OwnerEmail,
		OwnerName:  input.OwnerName,
		OwnerImage: input.OwnerImage,
		Likes:      "0",
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}

	s.log.WithField("questionnaire_id", rec.ID).Debug("questionnaire created")
	return rec, nil
}

func (s *questionnaireService) Get(ctx context.Context, id string) (*domain.EnrichedQuestionnaire, error) {
	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range snap.questionnaires {
		if rec.ID == id {
			enriched := aggregate.New(snap.responses, snap.users).Enrich(rec)
			s.metrics.RowsAggregated(1)
			return &enriched, nil
		}
	}
	return nil, domain.ErrQuestionnaireNotFound
}

// List returns enriched questionnaires ordered and paged according to opts.
// Nothing is cached: every call re-reads the store.
func (s *questionnaireService) List(ctx context.Context, opts domain.ListOptions) ([]domain.EnrichedQuestionnaire, error) {
	strategy, opts := PlanList(opts, s.defaultLimit)
	s.metrics.ListRequest(strategy.String())

	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.questionnaires) == 0 {
		return []domain.EnrichedQuestionnaire{}, nil
	}

	agg := aggregate.New(snap.responses, snap.users)
	out := listStrategies[strategy](agg, snap.questionnaires, opts)

	enriched := len(snap.questionnaires)
	if strategy == LatestPaged {
		enriched = len(out)
	}
	s.metrics.RowsAggregated(enriched)

	s.log.WithFields(logrus.Fields{
		"strategy": strategy.String(),
		"page":     opts.Page,
		"limit":    opts.Limit,
		"rows":     len(snap.questionnaires),
		"returned": len(out),
	}).Debug("questionnaires listed")

	return out, nil
}
