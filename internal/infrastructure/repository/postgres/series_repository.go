package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/codcl/league-stats/internal/domain/series"
	qb "github.com/codcl/league-stats/internal/platform/querybuilder"
)

type SeriesRepository struct {
	db *sqlx.DB
}

var seriesSelectColumns = []string{
	"match_id",
	"match_date::text AS match_date",
	"home_team",
	"away_team",
	"home_wins",
	"away_losses",
	"season",
}

const seriesUpsertSuffix = `ON CONFLICT (match_id)
DO UPDATE SET
    match_date = EXCLUDED.match_date,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    home_wins = EXCLUDED.home_wins,
    away_losses = EXCLUDED.away_losses,
    season = EXCLUDED.season,
    updated_at = NOW()`

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) UpsertSeries(ctx context.Context, items []series.Series) (int, error) {
	written := 0
	for _, item := range items {
		query, args, err := qb.InsertModel("match_series", seriesToTableModel(item), seriesUpsertSuffix)
		if err != nil {
			return written, fmt.Errorf("build upsert series query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return written, fmt.Errorf("upsert series %s: %w", item.MatchID, err)
		}
		written++
	}
	return written, nil
}

func (r *SeriesRepository) GetByMatchID(ctx context.Context, matchID string) (series.Series, bool, error) {
	query, args, err := qb.Select(seriesSelectColumns...).From("match_series").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return series.Series{}, false, fmt.Errorf("build select series query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, fmt.Errorf("select series: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SeriesRepository) ListBySeason(ctx context.Context, season int) ([]series.Series, error) {
	query, args, err := qb.Select(seriesSelectColumns...).From("match_series").
		Where(qb.Eq("season", season)).
		OrderBy("match_date", "match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list series by season query: %w", err)
	}
	return r.selectSeries(ctx, query, args)
}

func (r *SeriesRepository) ListByMatchIDs(ctx context.Context, matchIDs []string) ([]series.Series, error) {
	if len(matchIDs) == 0 {
		return []series.Series{}, nil
	}
	query, args, err := qb.Select(seriesSelectColumns...).From("match_series").
		Where(qb.In("match_id", stringSliceToAny(matchIDs))).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list series by match ids query: %w", err)
	}
	return r.selectSeries(ctx, query, args)
}

func (r *SeriesRepository) selectSeries(ctx context.Context, query string, args []any) ([]series.Series, error) {
	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select series: %w", err)
	}
	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
