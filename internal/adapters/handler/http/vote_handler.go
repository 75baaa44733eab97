package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
)

type VoteHandler struct {
	votes     ports.VoteService
	likes     ports.LikeService
	validator *validator.Validate
	log       logrus.FieldLogger
}

func NewVoteHandler(votes ports.VoteService, likes ports.LikeService, v *validator.Validate, log logrus.FieldLogger) *VoteHandler {
	return &VoteHandler{
		votes:     votes,
		likes:     likes,
		validator: v,
		log:       logging.OrDiscard(log),
	}
}

type voteRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type voteResponse struct {
	Message string           `json:"message"`
	Data    *domain.Response `json:"data"`
}

type likeRequest struct {
	Increment *bool `json:"increment" validate:"required"`
}

type likeResponse struct {
	Likes int `json:"likes"`
}

// Vote godoc
// @Summary      Submits an answer
// @Description  The answer is stored as given. Answers that are not one of the choices count toward the total only.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Questionnaire ID"
// @Param        request  body  voteRequest  true  "Chosen answer"
// @Success      201  {object}  voteResponse
// @Failure      400
// @Router       /api/questionnaires/{id}/responses [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.votes.RecordVote(r.Context(), chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, voteResponse{
		Message: "Response submitted!",
		Data:    resp,
	})
}

// Like godoc
// @Summary      Likes or unlikes a questionnaire
// @Description  Likes never go below zero.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Questionnaire ID"
// @Param        request  body  likeRequest  true  "true to like, false to unlike"
// @Success      200  {object}  likeResponse
// @Failure      400
// @Failure      404
// @Router       /api/questionnaires/{id}/likes [post]
func (h *VoteHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	likes, err := h.likes.AdjustLike(r.Context(), chi.URLParam(r, "id"), *req.Increment)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if likes == nil {
		writeError(w, http.StatusNotFound, domain.ErrQuestionnaireNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, likeResponse{Likes: *likes})
}
