package domain

import "errors"

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrInvalidTitle          = errors.New("title is required")
	ErrNotEnoughChoices      = errors.New("at least two valid choices are required")
	ErrDuplicateChoice       = errors.New("choices must be distinct")
	ErrInvalidVote           = errors.New("questionnaire id and answer are required")
	ErrInvalidProfile        = errors.New("name is required")
	ErrImageTooLarge         = errors.New("image too large for profile storage")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidSort           = errors.New("sort must be latest or popular")
)
