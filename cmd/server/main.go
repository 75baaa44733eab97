package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
	"github.com/vncsmyrnk/quickpoll/internal/telemetry"
)

type repositories struct {
	questionnaires ports.QuestionnaireRepository
	responses      ports.ResponseRepository
	users          ports.UserRepository
}

func main() {
	configFile := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, db, err := openStore(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}
	if db != nil {
		defer db.Close()
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("auth.jwt_secret not set, every request is anonymous")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(reg)

	questionnaireService := services.NewQuestionnaireService(services.QuestionnaireServiceConfig{
		Questionnaires: repos.questionnaires,
		Responses:      repos.responses,
		Users:          repos.users,
		Logger:         logger,
		Metrics:        metrics,
		DefaultLimit:   cfg.List.DefaultLimit,
	})
	voteService := services.NewVoteService(repos.responses, logger, metrics)
	likeService := services.NewLikeService(repos.questionnaires, logger, metrics)
	userService := services.NewUserService(repos.users)
	analyticsService := services.NewAnalyticsService(repos.questionnaires, repos.responses, nil)
	searchService := services.NewSearchService(questionnaireService)

	validator := http.NewValidator()
	handler := http.NewHandler(http.RouterConfig{
		Questionnaires: http.NewQuestionnaireHandler(questionnaireService, userService, validator, logger),
		Votes:          http.NewVoteHandler(voteService, likeService, validator, logger),
		Users:          http.NewUserHandler(userService, validator, logger),
		Analytics:      http.NewAnalyticsHandler(analyticsService, searchService, validator, logger),
		Auth:           http.NewAuthenticator(cfg.Auth.JWTSecret),
		Logger:         logger,
		Gatherer:       reg,
	})
	server := &stdhttp.Server{Addr: cfg.Server.Addr, Handler: handler}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.WithError(err).Fatal("server stopped")
		}
	}()
	logger.WithFields(logrus.Fields{
		"addr":  cfg.Server.Addr,
		"store": cfg.Store.Driver,
	}).Info("server started")

	<-ctx.Done()
	logger.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("shutdown failed")
	}
}

// openStore returns the configured repositories. db is nil for the memory
// store.
func openStore(ctx context.Context, cfg *config.Config) (repositories, *sql.DB, error) {
	if cfg.Store.Driver == config.DriverMemory {
		store := memory.NewStore()
		return repositories{
			questionnaires: store.Questionnaires(),
			responses:      store.Responses(),
			users:          store.Users(),
		}, nil, nil
	}

	db, err := postgres.Open(ctx, cfg.Database.DSN())
	if err != nil {
		return repositories{}, nil, err
	}
	return repositories{
		questionnaires: postgres.NewQuestionnaireRepository(db),
		responses:      postgres.NewResponseRepository(db),
		users:          postgres.NewUserRepository(db),
	}, db, nil
}
