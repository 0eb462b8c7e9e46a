package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"roottrace/adapters/classical"
	"roottrace/adapters/pathway"
	"roottrace/adapters/postgres"
	"roottrace/app"
	"roottrace/domain/knowledge"
	"roottrace/internal"
	"roottrace/internal/config"
	"roottrace/internal/jobs"
	"roottrace/ports"
	"roottrace/ui"
)

func main() {
	// Load .env file if present (development convenience)
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	kb := knowledge.Load()
	scorer := classical.NewScorer(kb, cfg.Weights)
	backend := pathway.NewBackend(cfg.Quantum, cfg.Weights, kb, logger)
	resolver := app.NewResolverService(kb, scorer, backend, cfg.Weights, logger)

	repo, err := buildJobRepository(cfg, logger)
	if err != nil {
		log.Fatalf("job repository error: %v", err)
	}

	runner := jobs.NewRunner(repo, resolver, logger, 256)
	runner.Start(context.Background(), cfg.Server.Workers)
	defer runner.Stop()

	dashboard := app.NewDashboardService(repo, resolver)
	api := ui.NewApp(resolver, dashboard, repo, runner, kb, logger)

	if err := api.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// buildJobRepository selects postgres when DATABASE_URL is set, otherwise
// the in-memory store.
func buildJobRepository(cfg *config.Config, logger *internal.Logger) (ports.JobRepository, error) {
	if cfg.Database.URL == "" {
		logger.Info("job store: in-memory")
		return jobs.NewMemoryStore(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		return nil, err
	}
	logger.Info("job store: postgres")
	return postgres.NewJobRepository(db), nil
}
