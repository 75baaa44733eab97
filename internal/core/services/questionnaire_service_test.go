package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

func newQuestionnaireService(store *memory.Store, metrics *telemetry.Metrics) ports.QuestionnaireService {
	return NewQuestionnaireService(QuestionnaireServiceConfig{
		Questionnaires: store.Questionnaires(),
		Responses:      store.Responses(),
		Users:          store.Users(),
		Metrics:        metrics,
	})
}

// seedQuestionnaires stores Q1..Qn oldest first, each with two choices.
func seedQuestionnaires(store *memory.Store, n int) {
	recs := make([]domain.QuestionnaireRecord, 0, n)
	for i := 1; i <= n; i++ {
		recs = append(recs, domain.QuestionnaireRecord{
			ID:        fmt.Sprintf("Q%d", i),
			Title:     fmt.Sprintf("Question %d", i),
			Choices:   `["yes","no"]`,
			CreatedAt: domain.FormatTimestamp(time.Date(2026, 1, i, 0, 0, 0, 0, time.UTC)),
			Likes:     "0",
		})
	}
	store.Seed(recs, nil, nil)
}

func seedVotes(store *memory.Store, qid string, n int) {
	responses := make([]domain.Response, 0, n)
	for i := 0; i < n; i++ {
		responses = append(responses, domain.Response{
			ID:              fmt.Sprintf("%s-r%d", qid, i),
			QuestionnaireID: qid,
			Answer:          "yes",
		})
	}
	store.Seed(nil, responses, nil)
}

func ids(list []domain.EnrichedQuestionnaire) []string {
	out := make([]string, 0, len(list))
	for _, q := range list {
		out = append(out, q.ID)
	}
	return out
}

func TestPlanList(t *testing.T) {
	tests := map[string]struct {
		opts         domain.ListOptions
		wantStrategy ListStrategy
		wantOpts     domain.ListOptions
	}{
		"no page": {
			opts:         domain.ListOptions{},
			wantStrategy: Unbounded,
			wantOpts:     domain.ListOptions{Limit: 20, Sort: domain.SortLatest},
		},
		"no page popular": {
			opts:         domain.ListOptions{Sort: domain.SortPopular},
			wantStrategy: Unbounded,
			wantOpts:     domain.ListOptions{Limit: 20, Sort: domain.SortPopular},
		},
		"latest page": {
			opts:         domain.ListOptions{Page: 2, Limit: 5},
			wantStrategy: LatestPaged,
			wantOpts:     domain.ListOptions{Page: 2, Limit: 5, Sort: domain.SortLatest},
		},
		"popular page": {
			opts:         domain.ListOptions{Page: 1, Sort: domain.SortPopular},
			wantStrategy: PopularPaged,
			wantOpts:     domain.ListOptions{Page: 1, Limit: 20, Sort: domain.SortPopular},
		},
		"negative limit clamps to one": {
			opts:         domain.ListOptions{Page: 1, Limit: -4},
			wantStrategy: LatestPaged,
			wantOpts:     domain.ListOptions{Page: 1, Limit: 1, Sort: domain.SortLatest},
		},
		"unknown sort is latest": {
			opts:         domain.ListOptions{Page: 1, Limit: 3, Sort: "random"},
			wantStrategy: LatestPaged,
			wantOpts:     domain.ListOptions{Page: 1, Limit: 3, Sort: domain.SortLatest},
		},
		"negative page is unbounded": {
			opts:         domain.ListOptions{Page: -1},
			wantStrategy: Unbounded,
			wantOpts:     domain.ListOptions{Limit: 20, Sort: domain.SortLatest},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			strategy, opts := PlanList(tc.opts, 0)
			assert.Equal(t, tc.wantStrategy, strategy)
			assert.Equal(t, tc.wantOpts, opts)
		})
	}
}

func TestList_LatestPageWindow(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 5)
	svc := newQuestionnaireService(store, nil)

	got, err := svc.List(context.Background(), domain.ListOptions{Page: 2, Limit: 2, Sort: domain.SortLatest})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q3", "Q2"}, ids(got))
	for _, q := range got {
		assert.Equal(t, map[string]int{"yes": 0, "no": 0}, q.Counts)
	}
}

func TestList_UnboundedIsNewestFirst(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 4)
	svc := newQuestionnaireService(store, nil)

	got, err := svc.List(context.Background(), domain.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q4", "Q3", "Q2", "Q1"}, ids(got))
}

func TestList_UnboundedPopularKeepsRecencyOnTies(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 4)
	seedVotes(store, "Q1", 3)
	seedVotes(store, "Q2", 1)
	seedVotes(store, "Q4", 1)
	svc := newQuestionnaireService(store, nil)

	got, err := svc.List(context.Background(), domain.ListOptions{Sort: domain.SortPopular})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q4", "Q2", "Q3"}, ids(got))
}

func TestList_PopularPagedBreaksTiesOnLikes(t *testing.T) {
	store := memory.NewStore()
	store.Seed([]domain.QuestionnaireRecord{
		{ID: "A", Choices: `["x"]`, Likes: "1"},
		{ID: "B", Choices: `["x"]`, Likes: "5"},
		{ID: "C", Choices: `["x"]`, Likes: "0"},
		{ID: "D", Choices: `["x"]`, Likes: "garbage"},
	}, nil, nil)
	seedVotes(store, "C", 2)
	seedVotes(store, "A", 1)
	seedVotes(store, "B", 1)
	svc := newQuestionnaireService(store, nil)

	page1, err := svc.List(context.Background(), domain.ListOptions{Page: 1, Limit: 2, Sort: domain.SortPopular})
	require.NoError(t, err)
	page2, err := svc.List(context.Background(), domain.ListOptions{Page: 2, Limit: 2, Sort: domain.SortPopular})
	require.NoError(t, err)
	page3, err := svc.List(context.Background(), domain.ListOptions{Page: 3, Limit: 2, Sort: domain.SortPopular})
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "B"}, ids(page1))
	assert.Equal(t, []string{"A", "D"}, ids(page2))
	assert.Empty(t, page3)
}

func TestList_PaginationLaws(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 11)
	for i := 1; i <= 11; i++ {
		seedVotes(store, fmt.Sprintf("Q%d", i), (i*7)%5)
	}
	svc := newQuestionnaireService(store, nil)
	ctx := context.Background()

	full, err := svc.List(ctx, domain.ListOptions{})
	require.NoError(t, err)

	const limit = 3
	var latest, popular []domain.EnrichedQuestionnaire
	for page := 1; page <= 4; page++ {
		l, err := svc.List(ctx, domain.ListOptions{Page: page, Limit: limit, Sort: domain.SortLatest})
		require.NoError(t, err)
		latest = append(latest, l...)

		p, err := svc.List(ctx, domain.ListOptions{Page: page, Limit: limit, Sort: domain.SortPopular})
		require.NoError(t, err)
		popular = append(popular, p...)
	}

	assert.Equal(t, full, latest)

	require.Len(t, popular, 11)
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].TotalResponses, popular[i].TotalResponses)
	}
}

func TestList_EmptyCollection(t *testing.T) {
	svc := newQuestionnaireService(memory.NewStore(), nil)

	for _, opts := range []domain.ListOptions{
		{},
		{Sort: domain.SortPopular},
		{Page: 1},
		{Page: 1, Sort: domain.SortPopular},
	} {
		got, err := svc.List(context.Background(), opts)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestList_PageBeyondEnd(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 3)
	svc := newQuestionnaireService(store, nil)

	tests := map[string]domain.ListOptions{
		"small page":         {Page: 9, Limit: 2},
		"page overflows":     {Page: math.MaxInt64/20 + 2, Limit: 20},
		"max page":           {Page: math.MaxInt64, Limit: 20},
		"max page popular":   {Page: math.MaxInt64, Limit: 20, Sort: domain.SortPopular},
		"max limit page two": {Page: 2, Limit: math.MaxInt64},
		"max limit max page": {Page: math.MaxInt64, Limit: math.MaxInt64, Sort: domain.SortPopular},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := svc.List(context.Background(), opts)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestList_MaxLimitFirstPage(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 3)
	svc := newQuestionnaireService(store, nil)

	got, err := svc.List(context.Background(), domain.ListOptions{Page: 1, Limit: math.MaxInt64})
	require.NoError(t, err)
	assert.Equal(t, []string{"Q3", "Q2", "Q1"}, ids(got))
}

func TestPageWindow(t *testing.T) {
	tests := map[string]struct {
		n, page, limit int
		start, end     int
	}{
		"first page":        {n: 5, page: 1, limit: 2, start: 0, end: 2},
		"partial last page": {n: 5, page: 3, limit: 2, start: 4, end: 5},
		"exactly at end":    {n: 4, page: 3, limit: 2, start: 4, end: 4},
		"empty":             {n: 0, page: 1, limit: 20, start: 0, end: 0},
		"overflowing page":  {n: 5, page: math.MaxInt64/20 + 2, limit: 20, start: 5, end: 5},
		"overflowing limit": {n: 5, page: 2, limit: math.MaxInt64, start: 5, end: 5},
		"max limit":         {n: 5, page: 1, limit: math.MaxInt64, start: 0, end: 5},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			start, end := pageWindow(tc.n, tc.page, tc.limit)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestList_RecordsMetrics(t *testing.T) {
	store := memory.NewStore()
	seedQuestionnaires(store, 5)
	reg := prometheus.NewRegistry()
	svc := newQuestionnaireService(store, telemetry.NewMetrics(reg))
	ctx := context.Background()

	_, err := svc.List(ctx, domain.ListOptions{Page: 1, Limit: 2})
	require.NoError(t, err)
	_, err = svc.List(ctx, domain.ListOptions{Page: 1, Limit: 2, Sort: domain.SortPopular})
	require.NoError(t, err)

	expected := `
# HELP quickpoll_aggregated_rows_total Questionnaire rows enriched with response statistics.
# TYPE quickpoll_aggregated_rows_total counter
quickpoll_aggregated_rows_total 7
# HELP quickpoll_list_requests_total Questionnaire list requests by planner strategy.
# TYPE quickpoll_list_requests_total counter
quickpoll_list_requests_total{strategy="latest_paged"} 1
quickpoll_list_requests_total{strategy="popular_paged"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"quickpoll_aggregated_rows_total", "quickpoll_list_requests_total"))
}

func TestCreate(t *testing.T) {
	store := memory.NewStore()
	svc := newQuestionnaireService(store, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, ports.CreateQuestionnaireInput{
		Title:      "  Lunch?  ",
		Choices:    []string{"Ramen", " ", "Sushi "},
		OwnerEmail: "owner@example.com",
		OwnerName:  "Owner",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Lunch?", rec.Title)
	assert.Equal(t, `["Ramen","Sushi"]`, rec.Choices)
	assert.Equal(t, "0", rec.Likes)
	_, ok := domain.ParseTimestamp(rec.CreatedAt)
	assert.True(t, ok)

	got, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ramen", "Sushi"}, got.Choices)
	assert.Equal(t, "Owner", got.OwnerName)
}

func TestCreate_Validation(t *testing.T) {
	svc := newQuestionnaireService(memory.NewStore(), nil)

	tests := map[string]struct {
		input ports.CreateQuestionnaireInput
		want  error
	}{
		"blank title": {input: ports.CreateQuestionnaireInput{Title: " ", Choices: []string{"a", "b"}}, want: domain.ErrInvalidTitle},
		"one choice":  {input: ports.CreateQuestionnaireInput{Title: "t", Choices: []string{"a", ""}}, want: domain.ErrNotEnoughChoices},
		"no choices":  {input: ports.CreateQuestionnaireInput{Title: "t"}, want: domain.ErrNotEnoughChoices},
		"duplicate":   {input: ports.CreateQuestionnaireInput{Title: "t", Choices: []string{"a", "a "}}, want: domain.ErrDuplicateChoice},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newQuestionnaireService(memory.NewStore(), nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrQuestionnaireNotFound)
}
