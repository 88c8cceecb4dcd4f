package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	qb "github.com/codcl/league-stats/internal/platform/querybuilder"
)

type GameMapRepository struct {
	db *sqlx.DB
}

var mapSelectColumns = []string{
	"match_id",
	"map_num",
	"mode",
	"map_name",
	"winner_team",
	"loser_team",
	"season",
}

const mapUpsertSuffix = `ON CONFLICT (match_id, map_num)
DO UPDATE SET
    mode = EXCLUDED.mode,
    map_name = EXCLUDED.map_name,
    winner_team = EXCLUDED.winner_team,
    loser_team = EXCLUDED.loser_team,
    season = EXCLUDED.season,
    updated_at = NOW()`

func NewGameMapRepository(db *sqlx.DB) *GameMapRepository {
	return &GameMapRepository{db: db}
}

func (r *GameMapRepository) UpsertMaps(ctx context.Context, items []gamemap.Record) (int, error) {
	written := 0
	for _, item := range items {
		query, args, err := qb.InsertModel("map_records", mapToTableModel(item), mapUpsertSuffix)
		if err != nil {
			return written, fmt.Errorf("build upsert map query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return written, fmt.Errorf("upsert map %s/%d: %w", item.MatchID, item.MapNum, err)
		}
		written++
	}
	return written, nil
}

func (r *GameMapRepository) ListByMatch(ctx context.Context, matchID string) ([]gamemap.Record, error) {
	query, args, err := qb.Select(mapSelectColumns...).From("map_records").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("map_num").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list maps by match query: %w", err)
	}
	return r.selectMaps(ctx, query, args)
}

func (r *GameMapRepository) ListBySeason(ctx context.Context, season int) ([]gamemap.Record, error) {
	query, args, err := qb.Select(mapSelectColumns...).From("map_records").
		Where(qb.Eq("season", season)).
		OrderBy("match_id", "map_num").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list maps by season query: %w", err)
	}
	return r.selectMaps(ctx, query, args)
}

func (r *GameMapRepository) ListByMatchIDs(ctx context.Context, matchIDs []string) ([]gamemap.Record, error) {
	if len(matchIDs) == 0 {
		return []gamemap.Record{}, nil
	}
	query, args, err := qb.Select(mapSelectColumns...).From("map_records").
		Where(qb.In("match_id", stringSliceToAny(matchIDs))).
		OrderBy("match_id", "map_num").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list maps by match ids query: %w", err)
	}
	return r.selectMaps(ctx, query, args)
}

func (r *GameMapRepository) selectMaps(ctx context.Context, query string, args []any) ([]gamemap.Record, error) {
	var rows []mapTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select maps: %w", err)
	}
	out := make([]gamemap.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
