package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/domain/series"
)

func TestStandingsService_StandingsByLeague(t *testing.T) {
	t.Parallel()

	seriesRepo := &stubSeriesRepo{items: []series.Series{
		{MatchID: "m1", MatchDate: "2026-04-01", HomeTeam: "Blackout", AwayTeam: "Spawn Flippers", Season: 3},
		// Cross-league pairing, must not count anywhere.
		{MatchID: "m2", MatchDate: "2026-04-02", HomeTeam: "Blackout", AwayTeam: "Hill Crashers", Season: 3},
		{MatchID: "m3", MatchDate: "2026-04-03", HomeTeam: "Trophy Systems", AwayTeam: "Wallbang City", Season: 3},
	}}
	mapRepo := &stubMapRepo{items: []gamemap.Record{
		{MatchID: "m1", MapNum: 1, WinnerTeam: "Blackout", LoserTeam: "Spawn Flippers", Season: 3},
		{MatchID: "m1", MapNum: 2, WinnerTeam: "Spawn Flippers", LoserTeam: "Blackout", Season: 3},
		{MatchID: "m1", MapNum: 3, WinnerTeam: "Blackout", LoserTeam: "Spawn Flippers", Season: 3},
		{MatchID: "m2", MapNum: 1, WinnerTeam: "Blackout", LoserTeam: "Hill Crashers", Season: 3},
		{MatchID: "m3", MapNum: 1, WinnerTeam: "Trophy Systems", LoserTeam: "Wallbang City", Season: 3},
		{MatchID: "m3", MapNum: 2, WinnerTeam: "Wallbang City", LoserTeam: "Trophy Systems", Season: 3},
	}}

	svc := NewStandingsService(seriesRepo, mapRepo)

	got, err := svc.StandingsByLeague(context.Background(), 3, season.LeagueLowers)
	if err != nil {
		t.Fatalf("StandingsByLeague error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected every lowers team in the table, got %d rows", len(got))
	}

	if got[0].Team != "Blackout" || got[0].SeriesWins != 1 || got[0].MapDiff != 1 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	// The m3 map split is a series tie: neither side gets a series result,
	// and the two sit level on the alphabetical tiebreak.
	if got[1].Team != "Trophy Systems" || got[1].SeriesWins != 0 || got[1].SeriesLosses != 0 {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
	if got[2].Team != "Wallbang City" || got[2].MapDiff != 0 {
		t.Fatalf("unexpected third row: %+v", got[2])
	}
	if got[3].Team != "Spawn Flippers" || got[3].SeriesLosses != 1 || got[3].MapDiff != -1 {
		t.Fatalf("unexpected last row: %+v", got[3])
	}
}

func TestStandingsService_StandingsByLeague_UnknownLeague(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(&stubSeriesRepo{}, &stubMapRepo{})

	_, err := svc.StandingsByLeague(context.Background(), 1, season.LeagueWomens)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a league the season does not run, got %v", err)
	}
}

func TestStandingsService_SeasonStandings(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(&stubSeriesRepo{}, &stubMapRepo{})

	got, err := svc.SeasonStandings(context.Background(), 1)
	if err != nil {
		t.Fatalf("SeasonStandings error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 league tables for an early season, got %d", len(got))
	}
	if len(got[season.LeagueLowers]) != 4 || len(got[season.LeagueUppers]) != 4 {
		t.Fatalf("unexpected table sizes: lowers=%d uppers=%d",
			len(got[season.LeagueLowers]), len(got[season.LeagueUppers]))
	}
}
