package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
	"github.com/vncsmyrnk/quickpoll/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var configFile, sort string
	var page, limit int

	flag.StringVar(&configFile, "config", "", "Optional YAML config file")
	flag.IntVar(&page, "page", 0, "Page to print, 0 prints every questionnaire")
	flag.IntVar(&limit, "limit", 0, "Page size")
	flag.StringVar(&sort, "sort", string(domain.SortLatest), "latest or popular")
	flag.Parse()

	sortOrder, err := domain.ParseSortOrder(sort)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	logger.SetOutput(os.Stderr)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.DSN())
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	service := services.NewQuestionnaireService(services.QuestionnaireServiceConfig{
		Questionnaires: postgres.NewQuestionnaireRepository(db),
		Responses:      postgres.NewResponseRepository(db),
		Users:          postgres.NewUserRepository(db),
		Logger:         logger,
		DefaultLimit:   cfg.List.DefaultLimit,
	})

	logger.Info("Starting questionnaire report...")

	list, err := service.List(ctx, domain.ListOptions{Page: page, Limit: limit, Sort: sortOrder})
	if err != nil {
		logger.WithError(err).Fatal("failed to list questionnaires")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		logger.WithError(err).Fatal("failed to write report")
	}

	logger.WithField("questionnaires", len(list)).Info("Questionnaire report completed successfully.")
}
