package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/playerstats"
	"github.com/codcl/league-stats/internal/domain/series"
)

type PlayerStatsService struct {
	playerRepo player.Repository
	seriesRepo series.Repository
	mapRepo    gamemap.Repository
	logRepo    playerlog.Repository
}

func NewPlayerStatsService(
	playerRepo player.Repository,
	seriesRepo series.Repository,
	mapRepo gamemap.Repository,
	logRepo playerlog.Repository,
) *PlayerStatsService {
	return &PlayerStatsService{
		playerRepo: playerRepo,
		seriesRepo: seriesRepo,
		mapRepo:    mapRepo,
		logRepo:    logRepo,
	}
}

// Profile bundles the player page reads. Aggregate and history are
// independent queries, so they run concurrently.
type Profile struct {
	Aggregate playerstats.Aggregate
	History   []playerstats.MatchSummary
}

func (s *PlayerStatsService) Profile(ctx context.Context, discordID string, seasonNum int) (Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Profile")
	defer span.End()

	var out Profile
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		aggregate, err := s.Aggregate(ctx, discordID, seasonNum)
		if err != nil {
			return err
		}
		out.Aggregate = aggregate
		return nil
	})
	p.Go(func(ctx context.Context) error {
		history, err := s.MatchHistory(ctx, discordID)
		if err != nil {
			return err
		}
		out.History = history
		return nil
	})
	if err := p.Wait(); err != nil {
		return Profile{}, err
	}
	return out, nil
}

// Aggregate recomputes a player's career line from assigned log rows and
// map records. seasonNum 0 spans all seasons. Overall and per-mode KD
// always divide summed kills by summed deaths; unresolved rows feed the
// raw totals but never map win/loss.
func (s *PlayerStatsService) Aggregate(ctx context.Context, discordID string, seasonNum int) (playerstats.Aggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Aggregate")
	defer span.End()

	discordID = strings.TrimSpace(discordID)
	if discordID == "" {
		return playerstats.Aggregate{}, fmt.Errorf("%w: discord id is required", ErrInvalidInput)
	}

	subject, exists, err := s.playerRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return playerstats.Aggregate{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return playerstats.Aggregate{}, fmt.Errorf("%w: player=%s", ErrNotFound, discordID)
	}

	rows, err := s.logRepo.ListByDiscordID(ctx, discordID, seasonNum)
	if err != nil {
		return playerstats.Aggregate{}, fmt.Errorf("list player log rows: %w", err)
	}

	matchIDs := distinctMatchIDs(rows)
	mapIndex, err := s.mapIndexByMatch(ctx, matchIDs)
	if err != nil {
		return playerstats.Aggregate{}, err
	}

	aggregate := playerstats.Aggregate{
		DiscordID: discordID,
		Name:      subject.Name,
		Modes:     make(map[string]playerstats.ModeBreakdown),
	}

	for _, row := range rows {
		aggregate.Kills += row.Kills
		aggregate.Deaths += row.Deaths
		aggregate.Assists += row.Assists

		breakdown := aggregate.Modes[row.Mode]
		breakdown.Mode = row.Mode
		breakdown.Kills += row.Kills
		breakdown.Deaths += row.Deaths
		breakdown.Assists += row.Assists
		breakdown.HillTime += row.HillTime
		breakdown.Plants += row.Plants
		breakdown.Defuses += row.Defuses
		breakdown.Ticks += row.Ticks

		if !row.Resolved {
			aggregate.Unresolved++
			aggregate.Modes[row.Mode] = breakdown
			continue
		}

		if record, ok := mapIndex[mapKey{matchID: row.MatchID, mapNum: row.MapNum}]; ok && record.WinnerTeam != "" {
			if strings.EqualFold(record.WinnerTeam, row.Team) {
				aggregate.MapWins++
				breakdown.MapWins++
			} else {
				aggregate.MapLosses++
				breakdown.MapLosses++
			}
		}
		aggregate.Modes[row.Mode] = breakdown
	}

	wins, losses := s.seriesRecord(rows, mapIndex)
	aggregate.SeriesWins = wins
	aggregate.SeriesLosses = losses

	return aggregate, nil
}

// MatchHistory lists the player's matches, newest first, each carrying the
// resolved per-map lines with display tags.
func (s *PlayerStatsService) MatchHistory(ctx context.Context, discordID string) ([]playerstats.MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.MatchHistory")
	defer span.End()

	discordID = strings.TrimSpace(discordID)
	if discordID == "" {
		return nil, fmt.Errorf("%w: discord id is required", ErrInvalidInput)
	}

	rows, err := s.logRepo.ListByDiscordID(ctx, discordID, 0)
	if err != nil {
		return nil, fmt.Errorf("list player log rows: %w", err)
	}
	if len(rows) == 0 {
		return []playerstats.MatchSummary{}, nil
	}

	matchIDs := distinctMatchIDs(rows)
	seriesRows, err := s.seriesRepo.ListByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	seriesByMatch := make(map[string]series.Series, len(seriesRows))
	for _, sr := range seriesRows {
		seriesByMatch[sr.MatchID] = sr
	}

	mapIndex, err := s.mapIndexByMatch(ctx, matchIDs)
	if err != nil {
		return nil, err
	}

	rowsByMatch := make(map[string][]playerlog.AssignedRow, len(matchIDs))
	for _, row := range rows {
		rowsByMatch[row.MatchID] = append(rowsByMatch[row.MatchID], row)
	}

	out := make([]playerstats.MatchSummary, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		matchRows := rowsByMatch[matchID]
		summary := playerstats.MatchSummary{MatchID: matchID}
		if sr, ok := seriesByMatch[matchID]; ok {
			summary.MatchDate = sr.MatchDate
			summary.HomeTeam = sr.HomeTeam
			summary.AwayTeam = sr.AwayTeam
			summary.HomeWins = sr.HomeWins
			summary.AwayLosses = sr.AwayLosses
			summary.Season = sr.Season
		}

		for _, row := range matchRows {
			if summary.Team == "" {
				summary.Team = row.Team
			}
			if !row.Resolved {
				summary.UnresolvedRows++
				continue
			}

			line := playerstats.MapLine{
				MapNum:  row.MapNum,
				Mode:    row.Mode,
				Kills:   row.Kills,
				Deaths:  row.Deaths,
				Assists: row.Assists,
				Tag:     row.Tag,
			}
			if record, ok := mapIndex[mapKey{matchID: matchID, mapNum: row.MapNum}]; ok {
				line.MapName = record.MapName
				line.Won = record.WinnerTeam != "" && strings.EqualFold(record.WinnerTeam, row.Team)
			}
			summary.Maps = append(summary.Maps, line)
		}

		sort.Slice(summary.Maps, func(i, j int) bool { return summary.Maps[i].MapNum < summary.Maps[j].MapNum })
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchDate != out[j].MatchDate {
			return out[i].MatchDate > out[j].MatchDate
		}
		return out[i].MatchID > out[j].MatchID
	})
	return out, nil
}

type mapKey struct {
	matchID string
	mapNum  int
}

func (s *PlayerStatsService) mapIndexByMatch(ctx context.Context, matchIDs []string) (map[mapKey]gamemap.Record, error) {
	if len(matchIDs) == 0 {
		return map[mapKey]gamemap.Record{}, nil
	}
	records, err := s.mapRepo.ListByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list map records: %w", err)
	}
	out := make(map[mapKey]gamemap.Record, len(records))
	for _, record := range records {
		out[mapKey{matchID: record.MatchID, mapNum: record.MapNum}] = record
	}
	return out, nil
}

// seriesRecord counts series outcomes for the player's team in each match
// it appears in. A team wins a series when it takes more maps than the
// opponent; an even split counts for neither side.
func (s *PlayerStatsService) seriesRecord(rows []playerlog.AssignedRow, mapIndex map[mapKey]gamemap.Record) (wins, losses int) {
	teamByMatch := make(map[string]string)
	for _, row := range rows {
		if _, ok := teamByMatch[row.MatchID]; !ok && row.Team != "" {
			teamByMatch[row.MatchID] = row.Team
		}
	}

	for matchID, team := range teamByMatch {
		teamWins, oppWins := 0, 0
		for key, record := range mapIndex {
			if key.matchID != matchID || record.WinnerTeam == "" {
				continue
			}
			if strings.EqualFold(record.WinnerTeam, team) {
				teamWins++
			} else {
				oppWins++
			}
		}
		switch {
		case teamWins > oppWins:
			wins++
		case teamWins < oppWins:
			losses++
		}
	}
	return wins, losses
}

func distinctMatchIDs(rows []playerlog.AssignedRow) []string {
	seen := make(map[string]bool, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if seen[row.MatchID] {
			continue
		}
		seen[row.MatchID] = true
		out = append(out, row.MatchID)
	}
	sort.Strings(out)
	return out
}
