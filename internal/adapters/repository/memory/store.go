// Package memory keeps the three collections in process. It backs the "memory"
// store driver and the service and handler tests.
package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type Store struct {
	mu             sync.RWMutex
	questionnaires []domain.QuestionnaireRecord
	responses      []domain.Response
	users          []domain.UserProfile
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Questionnaires() ports.QuestionnaireRepository {
	return questionnaireRepository{s}
}

func (s *Store) Responses() ports.ResponseRepository {
	return responseRepository{s}
}

func (s *Store) Users() ports.UserRepository {
	return userRepository{s}
}

type questionnaireRepository struct{ s *Store }

func (r questionnaireRepository) Append(_ context.Context, rec *domain.QuestionnaireRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.questionnaires = append(r.s.questionnaires, *rec)
	return nil
}

func (r questionnaireRepository) List(_ context.Context) ([]domain.QuestionnaireRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.questionnaires), nil
}

func (r questionnaireRepository) GetByID(_ context.Context, id string) (*domain.QuestionnaireRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.questionnaires {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (r questionnaireRepository) SetLikes(_ context.Context, id string, likes int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.questionnaires {
		if r.s.questionnaires[i].ID == id {
			r.s.questionnaires[i].Likes = strconv.Itoa(likes)
			return nil
		}
	}
	return domain.ErrQuestionnaireNotFound
}

type responseRepository struct{ s *Store }

func (r responseRepository) Append(_ context.Context, resp *domain.Response) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.responses = append(r.s.responses, *resp)
	return nil
}

func (r responseRepository) List(_ context.Context) ([]domain.Response, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.responses), nil
}

type userRepository struct{ s *Store }

func (r userRepository) Upsert(_ context.Context, profile *domain.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == profile.Email {
			r.s.users[i].Name = profile.Name
			r.s.users[i].Image = profile.Image
			return nil
		}
	}
	r.s.users = append(r.s.users, *profile)
	return nil
}

func (r userRepository) GetByEmail(_ context.Context, email string) (*domain.UserProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepository) List(_ context.Context) ([]domain.UserProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.users), nil
}
