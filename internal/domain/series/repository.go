package series

import "context"

// Repository describes series persistence needs from use cases.
// Upserts are keyed by match_id and idempotent.
type Repository interface {
	UpsertSeries(ctx context.Context, items []Series) (int, error)
	GetByMatchID(ctx context.Context, matchID string) (Series, bool, error)
	ListBySeason(ctx context.Context, season int) ([]Series, error)
	ListByMatchIDs(ctx context.Context, matchIDs []string) ([]Series, error)
}
