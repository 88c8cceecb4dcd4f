package postgres

import "github.com/codcl/league-stats/internal/domain/playerlog"

type playerLogTableModel struct {
	MatchID   string `db:"match_id"`
	MapNum    int    `db:"map_num"`
	DiscordID string `db:"discord_id"`
	Team      string `db:"team"`
	Mode      string `db:"mode"`
	Kills     int    `db:"kills"`
	Deaths    int    `db:"deaths"`
	Assists   int    `db:"assists"`
	HillTime  int    `db:"hill_time"`
	Plants    int    `db:"plants"`
	Defuses   int    `db:"defuses"`
	Ticks     int    `db:"ticks"`
	WriteIn   string `db:"write_in"`
	SourceRow int    `db:"source_row"`
	Resolved  bool   `db:"resolved"`
	Tag       string `db:"tag"`
	Season    int    `db:"season"`
}

func playerLogToTableModel(item playerlog.AssignedRow) playerLogTableModel {
	return playerLogTableModel{
		MatchID:   item.MatchID,
		MapNum:    item.MapNum,
		DiscordID: item.DiscordID,
		Team:      item.Team,
		Mode:      item.Mode,
		Kills:     item.Kills,
		Deaths:    item.Deaths,
		Assists:   item.Assists,
		HillTime:  item.HillTime,
		Plants:    item.Plants,
		Defuses:   item.Defuses,
		Ticks:     item.Ticks,
		WriteIn:   item.WriteIn,
		SourceRow: item.SourceRow,
		Resolved:  item.Resolved,
		Tag:       item.Tag,
		Season:    item.Season,
	}
}

func (m playerLogTableModel) toDomain() playerlog.AssignedRow {
	return playerlog.AssignedRow{
		Row: playerlog.Row{
			MatchID:   m.MatchID,
			DiscordID: m.DiscordID,
			Team:      m.Team,
			Mode:      m.Mode,
			Kills:     m.Kills,
			Deaths:    m.Deaths,
			Assists:   m.Assists,
			HillTime:  m.HillTime,
			Plants:    m.Plants,
			Defuses:   m.Defuses,
			Ticks:     m.Ticks,
			WriteIn:   m.WriteIn,
			SourceRow: m.SourceRow,
			Season:    m.Season,
		},
		MapNum:   m.MapNum,
		Resolved: m.Resolved,
		Tag:      m.Tag,
	}
}
