package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
)

type QuestionnaireHandler struct {
	service   ports.QuestionnaireService
	users     ports.UserService
	validator *validator.Validate
	log       logrus.FieldLogger
}

func NewQuestionnaireHandler(service ports.QuestionnaireService, users ports.UserService, v *validator.Validate, log logrus.FieldLogger) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		service:   service,
		users:     users,
		validator: v,
		log:       logging.OrDiscard(log),
	}
}

type listQuery struct {
	Page  *int   `validate:"omitempty,min=1"`
	Limit *int   `validate:"omitempty,min=1,max=100"`
	Sort  string `validate:"omitempty,oneof=latest popular"`
}

type createQuestionnaireRequest struct {
	Title   string   `json:"title" validate:"required"`
	Choices []string `json:"choices" validate:"required,min=2"`
}

type createQuestionnaireResponse struct {
	Message string                      `json:"message"`
	Data    *domain.QuestionnaireRecord `json:"data"`
}

// ListQuestionnaires godoc
// @Summary      Lists questionnaires with their results
// @Description  Without `page` every questionnaire is returned newest first. With `page` the list is paginated by `limit` (default 20) and ordered by `sort`.
// @Tags         questionnaires
// @Produce      json
// @Param        page   query  int     false  "Page number, starting at 1"
// @Param        limit  query  int     false  "Page size, 1 to 100"
// @Param        sort   query  string  false  "latest or popular"
// @Success      200  {array}  domain.EnrichedQuestionnaire
// @Failure      400
// @Router       /api/questionnaires [get]
func (h *QuestionnaireHandler) ListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}
	if err := h.validator.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := domain.ListOptions{Sort: domain.SortOrder(q.Sort)}
	if q.Page != nil {
		opts.Page = *q.Page
	}
	if q.Limit != nil {
		opts.Limit = *q.Limit
	}

	list, err := h.service.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func parseListQuery(r *http.Request) (listQuery, error) {
	values := r.URL.Query()
	q := listQuery{Sort: values.Get("sort")}

	var err error
	if q.Page, err = optionalInt(values.Get("page")); err != nil {
		return q, err
	}
	if q.Limit, err = optionalInt(values.Get("limit")); err != nil {
		return q, err
	}
	return q, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateQuestionnaire godoc
// @Summary      Creates a questionnaire
// @Description  When the caller is authenticated the questionnaire is owned by them and carries a snapshot of their profile.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        request  body  createQuestionnaireRequest  true  "Title and at least two choices"
// @Success      201  {object}  createQuestionnaireResponse
// @Failure      400
// @Router       /api/questionnaires [post]
func (h *QuestionnaireHandler) CreateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req createQuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := ports.CreateQuestionnaireInput{
		Title:   req.Title,
		Choices: req.Choices,
	}
	if email := emailFrom(r.Context()); email != "" {
		input.OwnerEmail = email
		input.OwnerName = nameFrom(r.Context())

		profile, err := h.users.GetProfile(r.Context(), email)
		if err != nil {
			writeServiceError(w, h.log, err)
			return
		}
		if profile != nil {
			input.OwnerName = profile.Name
			input.OwnerImage = profile.Image
		}
	}

	rec, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, createQuestionnaireResponse{
		Message: "Questionnaire created!",
		Data:    rec,
	})
}

// GetQuestionnaire godoc
// @Summary      Gets one questionnaire with its results
// @Tags         questionnaires
// @Produce      json
// @Param        id  path  string  true  "Questionnaire ID"
// @Success      200  {object}  domain.EnrichedQuestionnaire
// @Failure      404
// @Router       /api/questionnaires/{id} [get]
func (h *QuestionnaireHandler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}
