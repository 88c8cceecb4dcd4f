package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/codcl/league-stats/internal/domain/playerlog"
	qb "github.com/codcl/league-stats/internal/platform/querybuilder"
)

type PlayerLogRepository struct {
	db *sqlx.DB
}

var playerLogSelectColumns = []string{
	"match_id",
	"map_num",
	"discord_id",
	"team",
	"mode",
	"kills",
	"deaths",
	"assists",
	"hill_time",
	"plants",
	"defuses",
	"ticks",
	"write_in",
	"source_row",
	"resolved",
	"tag",
	"season",
}

const playerLogUpsertSuffix = `ON CONFLICT (match_id, map_num, discord_id)
DO UPDATE SET
    team = EXCLUDED.team,
    mode = EXCLUDED.mode,
    kills = EXCLUDED.kills,
    deaths = EXCLUDED.deaths,
    assists = EXCLUDED.assists,
    hill_time = EXCLUDED.hill_time,
    plants = EXCLUDED.plants,
    defuses = EXCLUDED.defuses,
    ticks = EXCLUDED.ticks,
    write_in = EXCLUDED.write_in,
    source_row = EXCLUDED.source_row,
    resolved = EXCLUDED.resolved,
    tag = EXCLUDED.tag,
    season = EXCLUDED.season,
    updated_at = NOW()`

func NewPlayerLogRepository(db *sqlx.DB) *PlayerLogRepository {
	return &PlayerLogRepository{db: db}
}

func (r *PlayerLogRepository) UpsertRows(ctx context.Context, items []playerlog.AssignedRow) (int, error) {
	written := 0
	for _, item := range items {
		query, args, err := qb.InsertModel("player_map_stats", playerLogToTableModel(item), playerLogUpsertSuffix)
		if err != nil {
			return written, fmt.Errorf("build upsert player log query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return written, fmt.Errorf("upsert player log %s/%d/%s: %w", item.MatchID, item.MapNum, item.DiscordID, err)
		}
		written++
	}
	return written, nil
}

func (r *PlayerLogRepository) ListByDiscordID(ctx context.Context, discordID string, season int) ([]playerlog.AssignedRow, error) {
	builder := qb.Select(playerLogSelectColumns...).From("player_map_stats").
		Where(qb.Eq("discord_id", discordID))
	if season > 0 {
		builder = builder.Where(qb.Eq("season", season))
	}
	query, args, err := builder.OrderBy("match_id", "source_row").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player logs query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

func (r *PlayerLogRepository) ListByMatch(ctx context.Context, matchID string) ([]playerlog.AssignedRow, error) {
	query, args, err := qb.Select(playerLogSelectColumns...).From("player_map_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("source_row").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player logs by match query: %w", err)
	}
	return r.selectRows(ctx, query, args)
}

func (r *PlayerLogRepository) selectRows(ctx context.Context, query string, args []any) ([]playerlog.AssignedRow, error) {
	var rows []playerLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player logs: %w", err)
	}
	out := make([]playerlog.AssignedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
