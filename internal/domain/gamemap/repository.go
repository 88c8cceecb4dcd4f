package gamemap

import "context"

// Repository describes map-record persistence needs from use cases.
// Upserts are keyed by (match_id, map_num) and idempotent.
type Repository interface {
	UpsertMaps(ctx context.Context, items []Record) (int, error)
	ListByMatch(ctx context.Context, matchID string) ([]Record, error)
	ListBySeason(ctx context.Context, season int) ([]Record, error)
	ListByMatchIDs(ctx context.Context, matchIDs []string) ([]Record, error)
}
