package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/codcl/league-stats/internal/domain/player"
	qb "github.com/codcl/league-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"discord_id",
	"name",
	"rank",
	"rank_na",
	"womens_eligible",
	"teams_by_league::text AS teams_by_league",
}

const playerUpsertSuffix = `ON CONFLICT (discord_id)
DO UPDATE SET
    name = EXCLUDED.name,
    rank = EXCLUDED.rank,
    rank_na = EXCLUDED.rank_na,
    womens_eligible = EXCLUDED.womens_eligible,
    teams_by_league = EXCLUDED.teams_by_league,
    updated_at = NOW()`

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) UpsertPlayers(ctx context.Context, items []player.Player) (int, error) {
	written := 0
	for _, item := range items {
		model, err := playerToTableModel(item)
		if err != nil {
			return written, err
		}
		query, args, err := qb.InsertModel("players", model, playerUpsertSuffix)
		if err != nil {
			return written, fmt.Errorf("build upsert player query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return written, fmt.Errorf("upsert player %s: %w", item.DiscordID, err)
		}
		written++
	}
	return written, nil
}

func (r *PlayerRepository) GetByDiscordID(ctx context.Context, discordID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("discord_id", discordID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return player.Player{}, false, err
	}
	return out, true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("name", "discord_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
