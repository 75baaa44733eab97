package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Questionnaires *QuestionnaireHandler
	Votes          *VoteHandler
	Users          *UserHandler
	Analytics      *AnalyticsHandler
	Auth           *Authenticator
	Logger         logrus.FieldLogger
	// Gatherer backs /metrics. The route is not mounted when nil.
	Gatherer prometheus.Gatherer
}

func NewHandler(c RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if c.Logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: c.Logger, NoColor: true}))
	}
	r.Use(middleware.Recoverer)

	if c.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(c.Auth.Authenticate)

		r.Route("/questionnaires", func(r chi.Router) {
			r.Get("/", c.Questionnaires.ListQuestionnaires)
			r.Post("/", c.Questionnaires.CreateQuestionnaire)
			r.Get("/{id}", c.Questionnaires.GetQuestionnaire)
			r.Post("/{id}/responses", c.Votes.Vote)
			r.Post("/{id}/likes", c.Votes.Like)
		})

		r.Get("/search", c.Analytics.Search)
		r.Get("/trends", c.Analytics.Trends)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/me", c.Users.GetMe)
			r.Put("/me", c.Users.UpdateMe)
			r.Get("/analytics/mine", c.Analytics.MyAnalytics)
		})
	})

	return r
}
