package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
)

type UserHandler struct {
	service   ports.UserService
	validator *validator.Validate
	log       logrus.FieldLogger
}

func NewUserHandler(service ports.UserService, v *validator.Validate, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: v,
		log:       logging.OrDiscard(log),
	}
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// GetMe godoc
// @Summary      Gets the authenticated user's profile
// @Description  Falls back to the token claims when no profile was saved yet.
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.UserProfile
// @Failure      401
// @Router       /api/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	email := emailFrom(r.Context())

	profile, err := h.service.GetProfile(r.Context(), email)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if profile == nil {
		profile = &domain.UserProfile{Email: email, Name: nameFrom(r.Context())}
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary      Saves the authenticated user's profile
// @Description  The new name and image show up on every questionnaire the user owns.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body  updateProfileRequest  true  "Profile"
// @Success      200  {object}  domain.UserProfile
// @Failure      400
// @Failure      401
// @Router       /api/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), emailFrom(r.Context()), req.Name, req.Image)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
