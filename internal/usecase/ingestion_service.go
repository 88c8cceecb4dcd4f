package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/codcl/league-stats/internal/domain/assignment"
	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/domain/series"
	"github.com/codcl/league-stats/internal/platform/logging"
)

// SheetSource fetches the four logical row ranges for one season from the
// upstream tabular source. Rows are ordered lists of loosely-typed cells;
// the column-position contract lives in normalize.go.
type SheetSource interface {
	FetchSeasonBatch(ctx context.Context, seasonNum int) (RawBatch, error)
}

// RawBatch is one season's worth of raw rows, exactly as fetched.
type RawBatch struct {
	Season     int
	Players    [][]any
	Series     [][]any
	Maps       [][]any
	PlayerLogs [][]any
}

// Report counts what one ingestion run accepted, rejected and wrote.
// Row-level defects never abort the run; they only show up here.
type Report struct {
	RunID             string        `json:"run_id"`
	Season            int           `json:"season"`
	PlayersUpserted   int           `json:"players_upserted"`
	PlayersDropped    int           `json:"players_dropped"`
	SeriesUpserted    int           `json:"series_upserted"`
	SeriesRejected    int           `json:"series_rejected"`
	MapsUpserted      int           `json:"maps_upserted"`
	MapsDropped       int           `json:"maps_dropped"`
	LogRowsUpserted   int           `json:"log_rows_upserted"`
	LogRowsDropped    int           `json:"log_rows_dropped"`
	DuplicatesDropped int           `json:"duplicates_dropped"`
	UnresolvedRows    int           `json:"unresolved_rows"`
	StartedAt         time.Time     `json:"started_at"`
	Duration          time.Duration `json:"duration"`
}

type IngestionService struct {
	source     SheetSource
	playerRepo player.Repository
	seriesRepo series.Repository
	mapRepo    gamemap.Repository
	logRepo    playerlog.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewIngestionService(
	source SheetSource,
	playerRepo player.Repository,
	seriesRepo series.Repository,
	mapRepo gamemap.Repository,
	logRepo playerlog.Repository,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		source:     source,
		playerRepo: playerRepo,
		seriesRepo: seriesRepo,
		mapRepo:    mapRepo,
		logRepo:    logRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// IngestSeason fetches a season's ranges and runs one ingestion pass.
// An unreachable source fails the whole run; nothing is written.
func (s *IngestionService) IngestSeason(ctx context.Context, seasonNum int) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestSeason")
	defer span.End()

	if seasonNum <= 0 {
		return Report{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if s.source == nil {
		return Report{}, fmt.Errorf("%w: sheet source is not configured", ErrDependencyUnavailable)
	}

	batch, err := s.source.FetchSeasonBatch(ctx, seasonNum)
	if err != nil {
		return Report{}, fmt.Errorf("%w: fetch season %d: %v", ErrDependencyUnavailable, seasonNum, err)
	}
	batch.Season = seasonNum

	return s.Ingest(ctx, batch)
}

// Ingest normalizes one raw batch, resolves map assignment per match and
// upserts the deduplicated result. Re-running with identical or
// overlapping input is safe: every write is keyed by its natural key.
func (s *IngestionService) Ingest(ctx context.Context, batch RawBatch) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Ingest")
	defer span.End()

	if batch.Season <= 0 {
		return Report{}, fmt.Errorf("%w: batch season must be greater than zero", ErrInvalidInput)
	}

	started := s.now()
	report := Report{
		RunID:     uuid.NewString(),
		Season:    batch.Season,
		StartedAt: started,
	}

	players := s.normalizePlayers(batch, &report)
	seriesRows := s.normalizeSeries(batch, &report)
	mapRows := s.normalizeMaps(batch, &report)
	logRows := s.normalizeLogRows(batch, &report)

	assigned := s.assignLogRows(batch.Season, seriesRows, mapRows, logRows, players, &report)

	if err := s.persist(ctx, players, seriesRows, mapRows, assigned, &report); err != nil {
		return report, err
	}

	report.Duration = s.now().Sub(started)
	s.logger.InfoContext(ctx, "ingestion run finished",
		"run_id", report.RunID,
		"season", report.Season,
		"players_upserted", report.PlayersUpserted,
		"series_upserted", report.SeriesUpserted,
		"maps_upserted", report.MapsUpserted,
		"log_rows_upserted", report.LogRowsUpserted,
		"unresolved_rows", report.UnresolvedRows,
		"duration", report.Duration,
	)
	return report, nil
}

func (s *IngestionService) normalizePlayers(batch RawBatch, report *Report) []player.Player {
	seen := make(map[string]bool, len(batch.Players))
	out := make([]player.Player, 0, len(batch.Players))

	for _, cells := range batch.Players {
		p, ok := parsePlayerRow(cells)
		if !ok {
			report.PlayersDropped++
			continue
		}
		if seen[p.DiscordID] {
			report.DuplicatesDropped++
			continue
		}
		seen[p.DiscordID] = true
		out = append(out, p)
	}
	return out
}

func (s *IngestionService) normalizeSeries(batch RawBatch, report *Report) []series.Series {
	seen := make(map[string]bool, len(batch.Series))
	out := make([]series.Series, 0, len(batch.Series))

	for _, cells := range batch.Series {
		row, ok := parseSeriesRow(cells, batch.Season, s.now())
		if !ok {
			report.SeriesRejected++
			continue
		}
		if seen[row.MatchID] {
			report.DuplicatesDropped++
			continue
		}
		seen[row.MatchID] = true
		out = append(out, row)
	}
	return out
}

func (s *IngestionService) normalizeMaps(batch RawBatch, report *Report) []gamemap.Record {
	type mapKey struct {
		matchID string
		mapNum  int
	}
	seen := make(map[mapKey]bool, len(batch.Maps))
	out := make([]gamemap.Record, 0, len(batch.Maps))

	for _, cells := range batch.Maps {
		row, ok := parseMapRow(cells, batch.Season)
		if !ok {
			report.MapsDropped++
			continue
		}
		key := mapKey{matchID: row.MatchID, mapNum: row.MapNum}
		if seen[key] {
			report.DuplicatesDropped++
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

func (s *IngestionService) normalizeLogRows(batch RawBatch, report *Report) []playerlog.Row {
	out := make([]playerlog.Row, 0, len(batch.PlayerLogs))
	for idx, cells := range batch.PlayerLogs {
		row, ok := parseLogRow(cells, batch.Season, idx)
		if !ok {
			report.LogRowsDropped++
			continue
		}
		out = append(out, row)
	}
	return out
}

// assignLogRows resolves map numbers per match and derives display tags.
// The strategy is chosen once per batch since every row shares a season.
func (s *IngestionService) assignLogRows(
	seasonNum int,
	seriesRows []series.Series,
	mapRows []gamemap.Record,
	logRows []playerlog.Row,
	players []player.Player,
	report *Report,
) []playerlog.AssignedRow {
	strategy := assignment.ForSeason(seasonNum)

	seriesByMatch := make(map[string]series.Series, len(seriesRows))
	for _, row := range seriesRows {
		seriesByMatch[row.MatchID] = row
	}
	mapsByMatch := make(map[string][]gamemap.Record, len(seriesRows))
	for _, row := range mapRows {
		mapsByMatch[row.MatchID] = append(mapsByMatch[row.MatchID], row)
	}
	rowsByMatch := make(map[string][]playerlog.Row, len(seriesRows))
	matchIDs := make([]string, 0, len(seriesRows))
	for _, row := range logRows {
		if _, ok := rowsByMatch[row.MatchID]; !ok {
			matchIDs = append(matchIDs, row.MatchID)
		}
		rowsByMatch[row.MatchID] = append(rowsByMatch[row.MatchID], row)
	}
	sort.Strings(matchIDs)

	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.DiscordID] = p
	}

	type logKey struct {
		matchID   string
		mapNum    int
		discordID string
	}
	seen := make(map[logKey]bool, len(logRows))
	out := make([]playerlog.AssignedRow, 0, len(logRows))

	for _, matchID := range matchIDs {
		result := assignment.Assign(strategy, mapsByMatch[matchID], rowsByMatch[matchID])
		report.UnresolvedRows += result.Unresolved

		matchLeague := season.LeagueUnknown
		if sr, ok := seriesByMatch[matchID]; ok {
			matchLeague = season.MatchLeague(seasonNum, sr.HomeTeam, sr.AwayTeam)
		}

		for _, row := range result.Rows {
			currentTeam := ""
			if matchLeague != season.LeagueUnknown {
				currentTeam = playersByID[row.DiscordID].CurrentTeam(string(matchLeague))
			}
			row.Tag = playerlog.DisplayTag(row.Row, currentTeam)

			key := logKey{matchID: row.MatchID, mapNum: row.MapNum, discordID: row.DiscordID}
			if seen[key] {
				report.DuplicatesDropped++
				continue
			}
			seen[key] = true
			out = append(out, row)
		}
	}
	return out
}

func (s *IngestionService) persist(
	ctx context.Context,
	players []player.Player,
	seriesRows []series.Series,
	mapRows []gamemap.Record,
	logRows []playerlog.AssignedRow,
	report *Report,
) error {
	if len(players) > 0 {
		n, err := s.playerRepo.UpsertPlayers(ctx, players)
		if err != nil {
			return fmt.Errorf("upsert players (attempted %d): %w", len(players), err)
		}
		report.PlayersUpserted = n
	}
	if len(seriesRows) > 0 {
		n, err := s.seriesRepo.UpsertSeries(ctx, seriesRows)
		if err != nil {
			return fmt.Errorf("upsert series (attempted %d): %w", len(seriesRows), err)
		}
		report.SeriesUpserted = n
	}
	if len(mapRows) > 0 {
		n, err := s.mapRepo.UpsertMaps(ctx, mapRows)
		if err != nil {
			return fmt.Errorf("upsert maps (attempted %d): %w", len(mapRows), err)
		}
		report.MapsUpserted = n
	}
	if len(logRows) > 0 {
		n, err := s.logRepo.UpsertRows(ctx, logRows)
		if err != nil {
			return fmt.Errorf("upsert player log rows (attempted %d): %w", len(logRows), err)
		}
		report.LogRowsUpserted = n
	}
	return nil
}
