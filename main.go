package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"thyroidrisk/adapters/postgres"
	"thyroidrisk/internal/config"
	"thyroidrisk/internal/errors"
	"thyroidrisk/internal/loader"
	"thyroidrisk/internal/migration"
	"thyroidrisk/internal/views"
	"thyroidrisk/ports"
	"thyroidrisk/ui"
)

// initDatabase connects to PostgreSQL and creates the load-history schema
func initDatabase(ctx context.Context, appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	// Load history is optional
	var history ports.LoadHistoryRepository
	if appConfig.Database.Enabled() {
		db, err := initDatabase(context.Background(), appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer db.Close()
		history = postgres.NewLoadRepository(db)
		log.Println("Recording dataset loads to PostgreSQL")
	}

	dataLoader := loader.New(appConfig.Data, loader.LogSink)
	cache := loader.NewCache(dataLoader, history)

	server, err := ui.NewServer(cache, views.NewRouter(appConfig.Dashboard.HeadRows), history, ui.Assets)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("🚀 Performance profiling server starting on :%s", appConfig.Profiling.Port)
			log.Printf("💡 View profiles: go tool pprof -http=:8081 http://localhost:%s/debug/pprof/profile?seconds=30", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("❌ pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("🚀 Starting thyroid risk dashboard on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
