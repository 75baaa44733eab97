package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type responseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) ports.ResponseRepository {
	return &responseRepository{
		db: db,
	}
}

func (r *responseRepository) Append(ctx context.Context, resp *domain.Response) error {
	query := `
		INSERT INTO responses (id, questionnaire_id, answer, submitted_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, resp.ID, resp.QuestionnaireID, resp.Answer, resp.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

func (r *responseRepository) List(ctx context.Context) ([]domain.Response, error) {
	query := `SELECT id, questionnaire_id, answer, submitted_at FROM responses ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return []domain.Response{}, nil
		}
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	responses := make([]domain.Response, 0)
	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(&resp.ID, &resp.QuestionnaireID, &resp.Answer, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}
	return responses, nil
}
