package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/domain/series"
	"github.com/codcl/league-stats/internal/domain/standings"
)

type StandingsService struct {
	seriesRepo series.Repository
	mapRepo    gamemap.Repository
}

func NewStandingsService(seriesRepo series.Repository, mapRepo gamemap.Repository) *StandingsService {
	return &StandingsService{seriesRepo: seriesRepo, mapRepo: mapRepo}
}

// StandingsByLeague builds the league table for one season. Every team the
// season defines for the league gets a row, played or not. A series counts
// toward the table only when both sides belong to the requested league;
// a map-count tie credits neither side with a series result.
func (s *StandingsService) StandingsByLeague(ctx context.Context, seasonNum int, league season.League) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.StandingsByLeague")
	defer span.End()

	if seasonNum <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	teams := season.TeamsByLeague(seasonNum, league)
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: league=%s season=%d", ErrNotFound, league, seasonNum)
	}

	table := make(map[string]*standings.Row, len(teams))
	order := make([]string, 0, len(teams))
	for _, team := range teams {
		key := strings.ToLower(team.DisplayName)
		table[key] = &standings.Row{Team: team.DisplayName}
		order = append(order, key)
	}

	seriesRows, err := s.seriesRepo.ListBySeason(ctx, seasonNum)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	mapRows, err := s.mapRepo.ListBySeason(ctx, seasonNum)
	if err != nil {
		return nil, fmt.Errorf("list map records: %w", err)
	}
	mapsByMatch := make(map[string][]gamemap.Record, len(seriesRows))
	for _, record := range mapRows {
		mapsByMatch[record.MatchID] = append(mapsByMatch[record.MatchID], record)
	}

	for _, sr := range seriesRows {
		if season.MatchLeague(seasonNum, sr.HomeTeam, sr.AwayTeam) != league {
			continue
		}
		home, homeOK := table[strings.ToLower(sr.HomeTeam)]
		away, awayOK := table[strings.ToLower(sr.AwayTeam)]
		if !homeOK || !awayOK {
			continue
		}

		homeMaps, awayMaps := 0, 0
		for _, record := range mapsByMatch[sr.MatchID] {
			switch {
			case record.WinnerTeam == "":
			case strings.EqualFold(record.WinnerTeam, sr.HomeTeam):
				homeMaps++
			case strings.EqualFold(record.WinnerTeam, sr.AwayTeam):
				awayMaps++
			}
		}

		home.MapWins += homeMaps
		home.MapLosses += awayMaps
		away.MapWins += awayMaps
		away.MapLosses += homeMaps

		switch {
		case homeMaps > awayMaps:
			home.SeriesWins++
			away.SeriesLosses++
		case awayMaps > homeMaps:
			away.SeriesWins++
			home.SeriesLosses++
		}
	}

	out := make([]standings.Row, 0, len(order))
	for _, key := range order {
		row := table[key]
		row.MapDiff = row.MapWins - row.MapLosses
		out = append(out, *row)
	}
	standings.Sort(out)
	return out, nil
}

// SeasonStandings builds every league table a season defines, keyed by
// league slug.
func (s *StandingsService) SeasonStandings(ctx context.Context, seasonNum int) (map[season.League][]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SeasonStandings")
	defer span.End()

	leagues := season.Leagues(seasonNum)
	if len(leagues) == 0 {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonNum)
	}

	out := make(map[season.League][]standings.Row, len(leagues))
	for _, league := range leagues {
		rows, err := s.StandingsByLeague(ctx, seasonNum, league)
		if err != nil {
			return nil, err
		}
		out[league] = rows
	}
	return out, nil
}
