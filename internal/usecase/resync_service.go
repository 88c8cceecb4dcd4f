package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/platform/logging"
)

// SeasonResult is the outcome of re-ingesting one season during a resync.
type SeasonResult struct {
	Season int    `json:"season"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Report Report `json:"report"`
}

// ResyncReport aggregates a full historical re-ingestion.
type ResyncReport struct {
	RunID     string         `json:"run_id"`
	Seasons   []SeasonResult `json:"seasons"`
	Failed    int            `json:"failed"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// ResyncService re-ingests a span of seasons through a bounded worker
// pool. Seasons are independent, so one failing never stops the rest.
type ResyncService struct {
	ingestion *IngestionService
	logger    *logging.Logger
	workers   int
	now       func() time.Time
}

func NewResyncService(ingestion *IngestionService, workers int, logger *logging.Logger) *ResyncService {
	if workers <= 0 {
		workers = 2
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ResyncService{
		ingestion: ingestion,
		logger:    logger,
		workers:   workers,
		now:       time.Now,
	}
}

// ResyncAll re-ingests every season from 1 through the current one.
func (s *ResyncService) ResyncAll(ctx context.Context) (ResyncReport, error) {
	return s.ResyncRange(ctx, 1, season.Current)
}

// ResyncRange re-ingests seasons fromSeason through toSeason inclusive.
func (s *ResyncService) ResyncRange(ctx context.Context, fromSeason, toSeason int) (ResyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResyncService.ResyncRange")
	defer span.End()

	if fromSeason <= 0 || toSeason < fromSeason {
		return ResyncReport{}, fmt.Errorf("%w: season range [%d, %d]", ErrInvalidInput, fromSeason, toSeason)
	}
	if s.ingestion == nil {
		return ResyncReport{}, fmt.Errorf("%w: ingestion service is not configured", ErrDependencyUnavailable)
	}

	started := s.now()
	out := ResyncReport{RunID: uuid.NewString(), StartedAt: started}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ResyncReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []SeasonResult
	)

	for seasonNum := fromSeason; seasonNum <= toSeason; seasonNum++ {
		seasonNum := seasonNum
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			result := SeasonResult{Season: seasonNum}
			report, err := s.ingestion.IngestSeason(ctx, seasonNum)
			result.Report = report
			if err != nil {
				result.Error = err.Error()
				s.logger.ErrorContext(ctx, "season resync failed", "season", seasonNum, "error", err)
			} else {
				result.OK = true
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			results = append(results, SeasonResult{
				Season: seasonNum,
				Error:  fmt.Sprintf("submit resync task: %v", submitErr),
			})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Season < results[j].Season })
	for _, result := range results {
		if !result.OK {
			out.Failed++
		}
	}
	out.Seasons = results
	out.Duration = s.now().Sub(started)

	s.logger.InfoContext(ctx, "resync finished",
		"from_season", fromSeason,
		"to_season", toSeason,
		"failed", out.Failed,
		"duration", out.Duration,
	)
	return out, nil
}
