// Package aggregate joins questionnaires, responses, and user profiles into
// enriched questionnaires carrying per-choice counts and percentages.
//
// Everything here is pure: the same inputs always produce the same output and
// nothing is cached between calls.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// Profiles maps an owner email to that user's current profile.
type Profiles map[string]domain.UserProfile

// ProfileMap indexes profiles by email. Profiles without an email are ignored and
// a later profile for the same email replaces an earlier one.
func ProfileMap(users []domain.UserProfile) Profiles {
	profiles := make(Profiles, len(users))
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		profiles[u.Email] = u
	}
	return profiles
}

// Enrich computes the derived view of one questionnaire.
//
// TotalResponses counts every response filed against the questionnaire, including
// responses whose answer is not a declared choice; those still contribute to the
// denominator of Stats but to no entry of Counts.
func Enrich(rec domain.QuestionnaireRecord, responses []domain.Response, profiles Profiles) domain.EnrichedQuestionnaire {
	choices := domain.ParseChoices(rec.Choices)

	out := domain.EnrichedQuestionnaire{
		ID:         rec.ID,
		Title:      rec.Title,
		Choices:    choices,
		CreatedAt:  rec.CreatedAt,
		OwnerEmail: rec.OwnerEmail,
		OwnerName:  rec.OwnerName,
		OwnerImage: rec.OwnerImage,
		Likes:      domain.ParseLikes(rec.Likes),
		Counts:     make(map[string]int, len(choices)),
		Stats:      make(map[string]int, len(choices)),
	}

	if rec.OwnerEmail != "" {
		if p, ok := profiles[rec.OwnerEmail]; ok {
			out.OwnerName = p.Name
			out.OwnerImage = p.Image
		}
	}

	for _, c := range choices {
		out.Counts[c] = 0
	}

	for _, r := range responses {
		if r.QuestionnaireID != rec.ID {
			continue
		}
		out.TotalResponses++
		if _, ok := out.Counts[r.Answer]; ok {
			out.Counts[r.Answer]++
		}
	}

	for _, c := range choices {
		out.Stats[c] = Percentage(out.Counts[c], out.TotalResponses)
	}

	return out
}

// Percentage returns count/total as a whole percentage rounded half up, or 0 when
// total is 0.
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return int(p.IntPart())
}

// Aggregator enriches questionnaires against one snapshot of responses and
// profiles.
type Aggregator struct {
	responses []domain.Response
	profiles  Profiles
}

func New(responses []domain.Response, users []domain.UserProfile) *Aggregator {
	return &Aggregator{
		responses: responses,
		profiles:  ProfileMap(users),
	}
}

func (a *Aggregator) Enrich(rec domain.QuestionnaireRecord) domain.EnrichedQuestionnaire {
	return Enrich(rec, a.responses, a.profiles)
}

// EnrichAll enriches records keeping their order.
func (a *Aggregator) EnrichAll(recs []domain.QuestionnaireRecord) []domain.EnrichedQuestionnaire {
	out := make([]domain.EnrichedQuestionnaire, 0, len(recs))
	for _, rec := range recs {
		out = append(out, a.Enrich(rec))
	}
	return out
}
