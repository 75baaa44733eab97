package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain sentinels to client errors. Anything else is
// logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	switch {
	case errors.Is(err, domain.ErrQuestionnaireNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrNotEnoughChoices),
		errors.Is(err, domain.ErrDuplicateChoice),
		errors.Is(err, domain.ErrInvalidVote),
		errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrImageTooLarge):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
