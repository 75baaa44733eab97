package memory

import (
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// Seed appends records verbatim, malformed fields included. Tests use it to put
// the store in states the services would never write.
func (s *Store) Seed(questionnaires []domain.QuestionnaireRecord, responses []domain.Response, users []domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionnaires = append(s.questionnaires, questionnaires...)
	s.responses = append(s.responses, responses...)
	s.users = append(s.users, users...)
}
