package postgres

import "github.com/codcl/league-stats/internal/domain/series"

type seriesTableModel struct {
	MatchID    string `db:"match_id"`
	MatchDate  string `db:"match_date"`
	HomeTeam   string `db:"home_team"`
	AwayTeam   string `db:"away_team"`
	HomeWins   int    `db:"home_wins"`
	AwayLosses int    `db:"away_losses"`
	Season     int    `db:"season"`
}

func seriesToTableModel(item series.Series) seriesTableModel {
	return seriesTableModel{
		MatchID:    item.MatchID,
		MatchDate:  item.MatchDate,
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		HomeWins:   item.HomeWins,
		AwayLosses: item.AwayLosses,
		Season:     item.Season,
	}
}

func (m seriesTableModel) toDomain() series.Series {
	return series.Series{
		MatchID:    m.MatchID,
		MatchDate:  m.MatchDate,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeWins:   m.HomeWins,
		AwayLosses: m.AwayLosses,
		Season:     m.Season,
	}
}
