package domain

import "fmt"

// QuestionnaireRecord is a questionnaire as it is kept by the store of record.
// Choices and Likes stay in their serialized form; see ParseChoices and ParseLikes.
type QuestionnaireRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Choices    string `json:"choices"`
	CreatedAt  string `json:"created_at"`
	OwnerEmail string `json:"owner_email,omitempty"`
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerImage string `json:"owner_image,omitempty"`
	Likes      string `json:"likes"`
}

// EnrichedQuestionnaire is the read-time projection of a questionnaire joined
// with its responses and its owner's current profile. It is never persisted.
type EnrichedQuestionnaire struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Choices        []string       `json:"choices"`
	CreatedAt      string         `json:"created_at"`
	OwnerEmail     string         `json:"owner_email,omitempty"`
	OwnerName      string         `json:"owner_name,omitempty"`
	OwnerImage     string         `json:"owner_image,omitempty"`
	Likes          int            `json:"likes"`
	TotalResponses int            `json:"totalResponses"`
	Counts         map[string]int `json:"counts"`
	Stats          map[string]int `json:"stats"`
}

type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortPopular SortOrder = "popular"
)

// ParseSortOrder accepts "latest" and "popular". An empty string is latest.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortLatest:
		return SortLatest, nil
	case SortPopular:
		return SortPopular, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

// ListOptions selects a page of questionnaires. Page 0 means no pagination.
type ListOptions struct {
	Page  int
	Limit int
	Sort  SortOrder
}
