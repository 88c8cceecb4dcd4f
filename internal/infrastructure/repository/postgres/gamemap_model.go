package postgres

import "github.com/codcl/league-stats/internal/domain/gamemap"

type mapTableModel struct {
	MatchID    string `db:"match_id"`
	MapNum     int    `db:"map_num"`
	Mode       string `db:"mode"`
	MapName    string `db:"map_name"`
	WinnerTeam string `db:"winner_team"`
	LoserTeam  string `db:"loser_team"`
	Season     int    `db:"season"`
}

func mapToTableModel(item gamemap.Record) mapTableModel {
	return mapTableModel{
		MatchID:    item.MatchID,
		MapNum:     item.MapNum,
		Mode:       item.Mode,
		MapName:    item.MapName,
		WinnerTeam: item.WinnerTeam,
		LoserTeam:  item.LoserTeam,
		Season:     item.Season,
	}
}

func (m mapTableModel) toDomain() gamemap.Record {
	return gamemap.Record{
		MatchID:    m.MatchID,
		MapNum:     m.MapNum,
		Mode:       m.Mode,
		MapName:    m.MapName,
		WinnerTeam: m.WinnerTeam,
		LoserTeam:  m.LoserTeam,
		Season:     m.Season,
	}
}
