package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type questionnaireRepository struct {
	db *sql.DB
}

func NewQuestionnaireRepository(db *sql.DB) ports.QuestionnaireRepository {
	return &questionnaireRepository{
		db: db,
	}
}

func (r *questionnaireRepository) Append(ctx context.Context, rec *domain.QuestionnaireRecord) error {
	query := `
		INSERT INTO questionnaires (id, title, choices, created_at, owner_email, owner_name, owner_image, likes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Title, rec.Choices, rec.CreatedAt,
		nullString(rec.OwnerEmail), nullString(rec.OwnerName), nullString(rec.OwnerImage),
		rec.Likes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert questionnaire: %w", err)
	}
	return nil
}

// List returns every questionnaire in insertion order.
func (r *questionnaireRepository) List(ctx context.Context) ([]domain.QuestionnaireRecord, error) {
	query := `
		SELECT id, title, choices, created_at, owner_email, owner_name, owner_image, likes
		FROM questionnaires
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return []domain.QuestionnaireRecord{}, nil
		}
		return nil, fmt.Errorf("failed to list questionnaires: %w", err)
	}
	defer rows.Close()

	recs := make([]domain.QuestionnaireRecord, 0)
	for rows.Next() {
		rec, err := scanQuestionnaire(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questionnaires: %w", err)
	}
	return recs, nil
}

func (r *questionnaireRepository) GetByID(ctx context.Context, id string) (*domain.QuestionnaireRecord, error) {
	query := `
		SELECT id, title, choices, created_at, owner_email, owner_name, owner_image, likes
		FROM questionnaires
		WHERE id = $1
	`
	rec, err := scanQuestionnaire(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *questionnaireRepository) SetLikes(ctx context.Context, id string, likes int) error {
	query := `UPDATE questionnaires SET likes = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, strconv.Itoa(likes), id)
	if err != nil {
		return fmt.Errorf("failed to update likes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update likes: %w", err)
	}
	if n == 0 {
		return domain.ErrQuestionnaireNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestionnaire(row rowScanner) (*domain.QuestionnaireRecord, error) {
	var rec domain.QuestionnaireRecord
	var ownerEmail, ownerName, ownerImage sql.NullString
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Choices, &rec.CreatedAt,
		&ownerEmail, &ownerName, &ownerImage, &rec.Likes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan questionnaire: %w", err)
	}
	rec.OwnerEmail = ownerEmail.String
	rec.OwnerName = ownerName.String
	rec.OwnerImage = ownerImage.String
	return &rec, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
