package services

import (
	"context"
	"time"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

const dailyWindow = 7

type analyticsService struct {
	loader snapshotLoader
	now    func() time.Time
}

// NewAnalyticsService builds the owner dashboard service. now defaults to
// time.Now; its location decides where days and months start.
func NewAnalyticsService(questionnaires ports.QuestionnaireRepository, responses ports.ResponseRepository, now func() time.Time) ports.AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		loader: snapshotLoader{
			questionnaires: questionnaires,
			responses:      responses,
		},
		now: now,
	}
}

func (s *analyticsService) OwnerAnalytics(ctx context.Context, ownerEmail string) (*domain.OwnerAnalytics, error) {
	empty := &domain.OwnerAnalytics{DailyStats: []domain.DailyCount{}}
	if ownerEmail == "" {
		return empty, nil
	}

	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]struct{})
	for _, rec := range snap.questionnaires {
		if rec.OwnerEmail == ownerEmail {
			owned[rec.ID] = struct{}{}
		}
	}
	if len(owned) == 0 {
		return empty, nil
	}

	now := s.now()
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := now.Add(-dailyWindow * 24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	days := make([]string, 0, dailyWindow)
	daily := make(map[string]int, dailyWindow)
	for i := dailyWindow - 1; i >= 0; i-- {
		key := todayStart.AddDate(0, 0, -i).Format(time.DateOnly)
		days = append(days, key)
		daily[key] = 0
	}

	out := &domain.OwnerAnalytics{}
	for _, r := range snap.responses {
		if _, ok := owned[r.QuestionnaireID]; !ok {
			continue
		}
		at, ok := domain.ParseTimestamp(r.SubmittedAt)
		if !ok {
			continue
		}
		at = at.In(loc)

		out.TotalVotes++
		if !at.Before(todayStart) {
			out.Today++
		}
		if !at.Before(weekStart) {
			out.Week++
		}
		if !at.Before(monthStart) {
			out.Month++
		}
		if key := at.Format(time.DateOnly); hasKey(daily, key) {
			daily[key]++
		}
	}

	out.DailyStats = make([]domain.DailyCount, 0, len(days))
	for _, key := range days {
		out.DailyStats = append(out.DailyStats, domain.DailyCount{
			Name:  key[5:],
			Total: daily[key],
		})
	}
	return out, nil
}

func hasKey(m map[string]int, key string) bool {
	_, ok := m[key]
	return ok
}
