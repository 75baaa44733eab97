package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// QuestionnaireRepository is the questionnaire collection of the store of record.
// List returns records in storage (append) order and an empty slice when the
// collection does not exist.
type QuestionnaireRepository interface {
	Append(ctx context.Context, rec *domain.QuestionnaireRecord) error
	List(ctx context.Context) ([]domain.QuestionnaireRecord, error)
	GetByID(ctx context.Context, id string) (*domain.QuestionnaireRecord, error)
	SetLikes(ctx context.Context, id string, likes int) error
}

type CreateQuestionnaireInput struct {
	Title      string
	Choices    []string
	OwnerEmail string
	OwnerName  string
	OwnerImage string
}

type QuestionnaireService interface {
	Create(ctx context.Context, input CreateQuestionnaireInput) (*domain.QuestionnaireRecord, error)
	Get(ctx context.Context, id string) (*domain.EnrichedQuestionnaire, error)
	List(ctx context.Context, opts domain.ListOptions) ([]domain.EnrichedQuestionnaire, error)
}
