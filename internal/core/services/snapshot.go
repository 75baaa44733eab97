package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

// snapshot is one read of the three collections the aggregation joins.
type snapshot struct {
	questionnaires []domain.QuestionnaireRecord
	responses      []domain.Response
	users          []domain.UserProfile
}

type snapshotLoader struct {
	questionnaires ports.QuestionnaireRepository
	responses      ports.ResponseRepository
	users          ports.UserRepository
}

// load reads the collections concurrently. The reads are not transactional with
// respect to each other.
func (l snapshotLoader) load(ctx context.Context) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := l.questionnaires.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load questionnaires: %w", err)
		}
		s.questionnaires = recs
		return nil
	})
	g.Go(func() error {
		responses, err := l.responses.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load responses: %w", err)
		}
		s.responses = responses
		return nil
	})
	if l.users != nil {
		g.Go(func() error {
			users, err := l.users.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to load users: %w", err)
			}
			s.users = users
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
