package services

import (
	"slices"
	"sort"

	"github.com/vncsmyrnk/quickpoll/internal/core/aggregate"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

const DefaultPageLimit = 20

// ListStrategy is the aggregation plan chosen for a list request.
type ListStrategy int

const (
	// Unbounded enriches every row and returns the whole list, newest first.
	Unbounded ListStrategy = iota
	// LatestPaged slices the newest-first raw rows and enriches only the page.
	LatestPaged
	// PopularPaged enriches every row, orders by response count, then slices.
	PopularPaged
)

func (s ListStrategy) String() string {
	switch s {
	case LatestPaged:
		return "latest_paged"
	case PopularPaged:
		return "popular_paged"
	default:
		return "unbounded"
	}
}

// PlanList normalizes opts and picks the strategy serving them. A page of 0 or
// less means no pagination, a limit of 0 means the default, and a negative limit
// is clamped to 1. Any sort other than popular is treated as latest.
func PlanList(opts domain.ListOptions, defaultLimit int) (ListStrategy, domain.ListOptions) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageLimit
	}
	switch {
	case opts.Limit == 0:
		opts.Limit = defaultLimit
	case opts.Limit < 0:
		opts.Limit = 1
	}
	if opts.Sort != domain.SortPopular {
		opts.Sort = domain.SortLatest
	}
	if opts.Page <= 0 {
		opts.Page = 0
		return Unbounded, opts
	}
	if opts.Sort == domain.SortPopular {
		return PopularPaged, opts
	}
	return LatestPaged, opts
}

type listFunc func(agg *aggregate.Aggregator, recs []domain.QuestionnaireRecord, opts domain.ListOptions) []domain.EnrichedQuestionnaire

var listStrategies = map[ListStrategy]listFunc{
	Unbounded:    listUnbounded,
	LatestPaged:  listLatestPaged,
	PopularPaged: listPopularPaged,
}

func listUnbounded(agg *aggregate.Aggregator, recs []domain.QuestionnaireRecord, opts domain.ListOptions) []domain.EnrichedQuestionnaire {
	out := agg.EnrichAll(recs)
	slices.Reverse(out)
	if opts.Sort == domain.SortPopular {
		sortByResponses(out)
	}
	return out
}

func listLatestPaged(agg *aggregate.Aggregator, recs []domain.QuestionnaireRecord, opts domain.ListOptions) []domain.EnrichedQuestionnaire {
	newest := slices.Clone(recs)
	slices.Reverse(newest)
	start, end := pageWindow(len(newest), opts.Page, opts.Limit)
	return agg.EnrichAll(newest[start:end])
}

// listPopularPaged orders storage-order rows by likes and then by response count,
// both stable, so likes break ties between equally answered questionnaires.
func listPopularPaged(agg *aggregate.Aggregator, recs []domain.QuestionnaireRecord, opts domain.ListOptions) []domain.EnrichedQuestionnaire {
	out := agg.EnrichAll(recs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes > out[j].Likes
	})
	sortByResponses(out)
	start, end := pageWindow(len(out), opts.Page, opts.Limit)
	return out[start:end]
}

func sortByResponses(list []domain.EnrichedQuestionnaire) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TotalResponses > list[j].TotalResponses
	})
}

// pageWindow returns the bounds of [(page-1)*limit, (page-1)*limit+limit) clamped
// to n. page and limit must be positive; the bounds never overflow.
func pageWindow(n, page, limit int) (int, int) {
	if page-1 > n/limit {
		return n, n
	}
	start := (page - 1) * limit
	if start > n {
		return n, n
	}
	return start, start + min(limit, n-start)
}
