package postgres

import (
	"fmt"

	sonic "github.com/bytedance/sonic"

	"github.com/codcl/league-stats/internal/domain/player"
)

type playerTableModel struct {
	DiscordID      string  `db:"discord_id"`
	Name           string  `db:"name"`
	Rank           float64 `db:"rank"`
	RankNA         bool    `db:"rank_na"`
	WomensEligible bool    `db:"womens_eligible"`
	TeamsByLeague  string  `db:"teams_by_league"`
}

func playerToTableModel(item player.Player) (playerTableModel, error) {
	teams, err := sonic.MarshalString(item.TeamsByLeague)
	if err != nil {
		return playerTableModel{}, fmt.Errorf("encode teams for player %s: %w", item.DiscordID, err)
	}
	return playerTableModel{
		DiscordID:      item.DiscordID,
		Name:           item.Name,
		Rank:           item.Rank,
		RankNA:         item.RankNA,
		WomensEligible: item.WomensEligible,
		TeamsByLeague:  teams,
	}, nil
}

func (m playerTableModel) toDomain() (player.Player, error) {
	out := player.Player{
		DiscordID:      m.DiscordID,
		Name:           m.Name,
		Rank:           m.Rank,
		RankNA:         m.RankNA,
		WomensEligible: m.WomensEligible,
	}
	if m.TeamsByLeague != "" && m.TeamsByLeague != "null" {
		if err := sonic.UnmarshalString(m.TeamsByLeague, &out.TeamsByLeague); err != nil {
			return player.Player{}, fmt.Errorf("decode teams for player %s: %w", m.DiscordID, err)
		}
	}
	return out, nil
}
