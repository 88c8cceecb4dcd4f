package memory

import (
	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/series"
)

// Seed data covers one current-season lowers series so the read API has
// something to show when running without a database.

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			DiscordID: "100001",
			Name:      "Fastlane",
			Rank:      3.5,
			TeamsByLeague: map[string]string{
				"lowers": "Blackout",
			},
		},
		{
			DiscordID: "100002",
			Name:      "Clutchman",
			Rank:      4.0,
			TeamsByLeague: map[string]string{
				"lowers": "Blackout",
			},
		},
		{
			DiscordID: "100003",
			Name:      "Snaked",
			Rank:      2.5,
			TeamsByLeague: map[string]string{
				"lowers": "Spawn Flippers",
			},
		},
		{
			DiscordID: "100004",
			Name:      "Hilltop",
			Rank:      5.0,
			TeamsByLeague: map[string]string{
				"lowers": "Spawn Flippers",
			},
		},
	}
}

func SeedSeries() []series.Series {
	return []series.Series{
		{
			MatchID:   "s3-w1-blk-spf",
			MatchDate: "2026-08-02",
			HomeTeam:  "Blackout",
			AwayTeam:  "Spawn Flippers",
			HomeWins:  2,
			Season:    3,
		},
	}
}

func SeedMaps() []gamemap.Record {
	return []gamemap.Record{
		{
			MatchID:    "s3-w1-blk-spf",
			MapNum:     1,
			Mode:       playerlog.ModeHardpoint,
			MapName:    "Karachi",
			WinnerTeam: "Blackout",
			LoserTeam:  "Spawn Flippers",
			Season:     3,
		},
		{
			MatchID:    "s3-w1-blk-spf",
			MapNum:     2,
			Mode:       playerlog.ModeSearchAndDestroy,
			MapName:    "Highrise",
			WinnerTeam: "Spawn Flippers",
			LoserTeam:  "Blackout",
			Season:     3,
		},
		{
			MatchID:    "s3-w1-blk-spf",
			MapNum:     3,
			Mode:       playerlog.ModeControl,
			MapName:    "Invasion",
			WinnerTeam: "Blackout",
			LoserTeam:  "Spawn Flippers",
			Season:     3,
		},
	}
}

func SeedPlayerLogs() []playerlog.AssignedRow {
	seedRow := func(mapNum int, discordID, team, mode string, kills, deaths int, sourceRow int) playerlog.AssignedRow {
		return playerlog.AssignedRow{
			Row: playerlog.Row{
				MatchID:   "s3-w1-blk-spf",
				DiscordID: discordID,
				Team:      team,
				Mode:      mode,
				Kills:     kills,
				Deaths:    deaths,
				SourceRow: sourceRow,
				Season:    3,
			},
			MapNum:   mapNum,
			Resolved: true,
		}
	}

	return []playerlog.AssignedRow{
		seedRow(1, "100001", "Blackout", playerlog.ModeHardpoint, 28, 21, 0),
		seedRow(1, "100002", "Blackout", playerlog.ModeHardpoint, 24, 23, 1),
		seedRow(1, "100003", "Spawn Flippers", playerlog.ModeHardpoint, 22, 26, 2),
		seedRow(1, "100004", "Spawn Flippers", playerlog.ModeHardpoint, 20, 24, 3),
		seedRow(2, "100001", "Blackout", playerlog.ModeSearchAndDestroy, 6, 5, 4),
		seedRow(2, "100002", "Blackout", playerlog.ModeSearchAndDestroy, 4, 6, 5),
		seedRow(2, "100003", "Spawn Flippers", playerlog.ModeSearchAndDestroy, 7, 4, 6),
		seedRow(2, "100004", "Spawn Flippers", playerlog.ModeSearchAndDestroy, 5, 6, 7),
		seedRow(3, "100001", "Blackout", playerlog.ModeControl, 19, 15, 8),
		seedRow(3, "100002", "Blackout", playerlog.ModeControl, 17, 16, 9),
		seedRow(3, "100003", "Spawn Flippers", playerlog.ModeControl, 15, 18, 10),
		seedRow(3, "100004", "Spawn Flippers", playerlog.ModeControl, 14, 17, 11),
	}
}
