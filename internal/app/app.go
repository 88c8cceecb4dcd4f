package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/codcl/league-stats/external/sheets"
	"github.com/codcl/league-stats/internal/config"
	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/series"
	"github.com/codcl/league-stats/internal/infrastructure/repository/memory"
	"github.com/codcl/league-stats/internal/infrastructure/repository/postgres"
	"github.com/codcl/league-stats/internal/interfaces/httpapi"
	"github.com/codcl/league-stats/internal/platform/logging"
	"github.com/codcl/league-stats/internal/platform/resilience"
	"github.com/codcl/league-stats/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup closes the database handle
// when one was opened; it is safe to call after Shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		playerRepo player.Repository
		seriesRepo series.Repository
		mapRepo    gamemap.Repository
		logRepo    playerlog.Repository
		cleanup    = func() {}
	)

	if cfg.DBURL != "" {
		db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, true),
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}

		playerRepo = postgres.NewPlayerRepository(db)
		seriesRepo = postgres.NewSeriesRepository(db)
		mapRepo = postgres.NewGameMapRepository(db)
		logRepo = postgres.NewPlayerLogRepository(db)
		cleanup = func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("close database", "error", closeErr)
			}
		}
		logger.Info("storage configured", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		seriesRepo = memory.NewSeriesRepository(memory.SeedSeries())
		mapRepo = memory.NewGameMapRepository(memory.SeedMaps())
		logRepo = memory.NewPlayerLogRepository(memory.SeedPlayerLogs())
		logger.Info("storage configured", "backend", "memory")
	}

	sheetsClient := sheets.NewClient(sheets.ClientConfig{
		BaseURL:       cfg.SheetsBaseURL,
		APIKey:        cfg.SheetsAPIKey,
		SpreadsheetID: cfg.SheetsSpreadsheetID,
		Timeout:       cfg.SheetsTimeout,
		MaxRetries:    cfg.SheetsMaxRetries,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SheetsCircuitEnabled,
			FailureThreshold: cfg.SheetsCircuitFailureCount,
			OpenTimeout:      cfg.SheetsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SheetsCircuitHalfOpenMaxReq,
		},
	})

	ingestionSvc := usecase.NewIngestionService(sheetsClient, playerRepo, seriesRepo, mapRepo, logRepo, logger)
	statsSvc := usecase.NewPlayerStatsService(playerRepo, seriesRepo, mapRepo, logRepo)
	standingsSvc := usecase.NewStandingsService(seriesRepo, mapRepo)
	resyncSvc := usecase.NewResyncService(ingestionSvc, cfg.ResyncWorkers, logger)

	handler := httpapi.NewHandler(statsSvc, standingsSvc, ingestionSvc, resyncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
