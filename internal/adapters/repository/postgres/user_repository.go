package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, user *domain.UserProfile) error {
	query := `
		INSERT INTO users (email, name, image) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, image = EXCLUDED.image
	`
	_, err := r.db.ExecContext(ctx, query, user.Email, user.Name, user.Image)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	query := `SELECT email, name, image FROM users WHERE email = $1`
	user := &domain.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.Email, &user.Name, &user.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email, name, image FROM users`)
	if err != nil {
		if isUndefinedTable(err) {
			return []domain.UserProfile{}, nil
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.UserProfile, 0)
	for rows.Next() {
		var u domain.UserProfile
		if err := rows.Scan(&u.Email, &u.Name, &u.Image); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
