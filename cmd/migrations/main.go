package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All up migrations executed successfully.")
		return
	}

	fileName, content, err := postgres.MigrationByName(migrationName)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		log.Fatalf("Failed to execute SQL file %s: %v", fileName, err)
	}

	fmt.Println("Migration file executed successfully.")
}
