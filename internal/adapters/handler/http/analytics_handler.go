package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
)

type AnalyticsHandler struct {
	analytics ports.AnalyticsService
	search    ports.SearchService
	validator *validator.Validate
	log       logrus.FieldLogger
}

func NewAnalyticsHandler(analytics ports.AnalyticsService, search ports.SearchService, v *validator.Validate, log logrus.FieldLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		search:    search,
		validator: v,
		log:       logging.OrDiscard(log),
	}
}

type trendsQuery struct {
	Limit *int `validate:"omitempty,min=1,max=100"`
}

// MyAnalytics godoc
// @Summary      Vote statistics for the caller's questionnaires
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  domain.OwnerAnalytics
// @Failure      401
// @Router       /api/analytics/mine [get]
func (h *AnalyticsHandler) MyAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.OwnerAnalytics(r.Context(), emailFrom(r.Context()))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Search godoc
// @Summary      Searches questionnaires by title and choices
// @Tags         analytics
// @Produce      json
// @Param        q  query  string  false  "Text to look for"
// @Success      200  {array}  domain.EnrichedQuestionnaire
// @Router       /api/search [get]
func (h *AnalyticsHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Trends godoc
// @Summary      Most frequent words across questionnaire titles
// @Tags         analytics
// @Produce      json
// @Param        limit  query  int  false  "Number of words, 1 to 100"
// @Success      200  {array}  domain.TrendWord
// @Failure      400
// @Router       /api/trends [get]
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	limit, err := optionalInt(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}
	q := trendsQuery{Limit: limit}
	if err := h.validator.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n := 0
	if q.Limit != nil {
		n = *q.Limit
	}
	trends, err := h.search.Trends(r.Context(), n)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}
