package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/series"
)

func assignedRow(matchID, discordID, team, mode string, mapNum, kills, deaths, season int) playerlog.AssignedRow {
	return playerlog.AssignedRow{
		Row: playerlog.Row{
			MatchID:   matchID,
			DiscordID: discordID,
			Team:      team,
			Mode:      mode,
			Kills:     kills,
			Deaths:    deaths,
			Season:    season,
		},
		MapNum:   mapNum,
		Resolved: mapNum > 0,
	}
}

func TestPlayerStatsService_Aggregate(t *testing.T) {
	t.Parallel()

	playerRepo := newStubPlayerRepo(player.Player{DiscordID: "d1", Name: "Alpha"})
	logRepo := &stubLogRepo{items: []playerlog.AssignedRow{
		assignedRow("m1", "d1", "Blackout", "Hardpoint", 1, 10, 5, 3),
		assignedRow("m1", "d1", "Blackout", "Search and Destroy", 2, 5, 5, 3),
		assignedRow("m1", "d1", "Blackout", "Hardpoint", 0, 2, 1, 3),
	}}
	mapRepo := &stubMapRepo{items: []gamemap.Record{
		{MatchID: "m1", MapNum: 1, Mode: "Hardpoint", WinnerTeam: "Blackout", LoserTeam: "Spawn Flippers", Season: 3},
		{MatchID: "m1", MapNum: 2, Mode: "Search and Destroy", WinnerTeam: "Spawn Flippers", LoserTeam: "Blackout", Season: 3},
		{MatchID: "m1", MapNum: 3, Mode: "Hardpoint", WinnerTeam: "Blackout", LoserTeam: "Spawn Flippers", Season: 3},
	}}

	svc := NewPlayerStatsService(playerRepo, &stubSeriesRepo{}, mapRepo, logRepo)

	got, err := svc.Aggregate(context.Background(), "d1", 3)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	if got.Kills != 17 || got.Deaths != 11 {
		t.Fatalf("unexpected totals: kills=%d deaths=%d", got.Kills, got.Deaths)
	}
	if got.MapWins != 1 || got.MapLosses != 1 {
		t.Fatalf("unexpected map record: %d-%d", got.MapWins, got.MapLosses)
	}
	if got.Unresolved != 1 {
		t.Fatalf("expected 1 unresolved row, got %d", got.Unresolved)
	}
	if got.SeriesWins != 1 || got.SeriesLosses != 0 {
		t.Fatalf("unexpected series record: %d-%d", got.SeriesWins, got.SeriesLosses)
	}

	hp := got.Modes["Hardpoint"]
	if hp.Kills != 12 || hp.Deaths != 6 || hp.MapWins != 1 || hp.MapLosses != 0 {
		t.Fatalf("unexpected hardpoint breakdown: %+v", hp)
	}
	if got.KD().String() != "1.55" {
		t.Fatalf("unexpected overall kd: %s", got.KD())
	}
}

func TestPlayerStatsService_Aggregate_UnknownPlayer(t *testing.T) {
	t.Parallel()

	svc := NewPlayerStatsService(newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, &stubLogRepo{})

	_, err := svc.Aggregate(context.Background(), "ghost", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_MatchHistory_NewestFirst(t *testing.T) {
	t.Parallel()

	playerRepo := newStubPlayerRepo(player.Player{DiscordID: "d1", Name: "Alpha"})
	seriesRepo := &stubSeriesRepo{items: []series.Series{
		{MatchID: "m1", MatchDate: "2026-04-01", HomeTeam: "Blackout", AwayTeam: "Spawn Flippers", Season: 3},
		{MatchID: "m2", MatchDate: "2026-04-08", HomeTeam: "Blackout", AwayTeam: "Wallbang City", Season: 3},
	}}
	mapRepo := &stubMapRepo{items: []gamemap.Record{
		{MatchID: "m1", MapNum: 1, Mode: "Hardpoint", MapName: "Karachi", WinnerTeam: "Blackout", Season: 3},
		{MatchID: "m2", MapNum: 1, Mode: "Hardpoint", MapName: "Highrise", WinnerTeam: "Wallbang City", Season: 3},
	}}
	logRepo := &stubLogRepo{items: []playerlog.AssignedRow{
		assignedRow("m1", "d1", "Blackout", "Hardpoint", 1, 10, 5, 3),
		assignedRow("m2", "d1", "Blackout", "Hardpoint", 1, 7, 9, 3),
		assignedRow("m2", "d1", "Blackout", "Control", 0, 3, 3, 3),
	}}

	svc := NewPlayerStatsService(playerRepo, seriesRepo, mapRepo, logRepo)

	got, err := svc.MatchHistory(context.Background(), "d1")
	if err != nil {
		t.Fatalf("MatchHistory error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	if got[0].MatchID != "m2" || got[1].MatchID != "m1" {
		t.Fatalf("expected newest match first, got %s then %s", got[0].MatchID, got[1].MatchID)
	}
	if got[0].UnresolvedRows != 1 || len(got[0].Maps) != 1 {
		t.Fatalf("unexpected m2 summary: %+v", got[0])
	}
	if got[0].Maps[0].MapName != "Highrise" || got[0].Maps[0].Won {
		t.Fatalf("unexpected m2 map line: %+v", got[0].Maps[0])
	}
	if !got[1].Maps[0].Won {
		t.Fatalf("expected a map win in m1: %+v", got[1].Maps[0])
	}
}

func TestPlayerStatsService_Profile(t *testing.T) {
	t.Parallel()

	playerRepo := newStubPlayerRepo(player.Player{DiscordID: "d1", Name: "Alpha"})
	logRepo := &stubLogRepo{items: []playerlog.AssignedRow{
		assignedRow("m1", "d1", "Blackout", "Hardpoint", 1, 4, 2, 3),
	}}

	svc := NewPlayerStatsService(playerRepo, &stubSeriesRepo{}, &stubMapRepo{}, logRepo)

	got, err := svc.Profile(context.Background(), "d1", 0)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if got.Aggregate.Kills != 4 {
		t.Fatalf("unexpected aggregate: %+v", got.Aggregate)
	}
	if len(got.History) != 1 || got.History[0].MatchID != "m1" {
		t.Fatalf("unexpected history: %+v", got.History)
	}
}
