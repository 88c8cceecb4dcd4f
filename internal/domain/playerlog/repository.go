package playerlog

import "context"

// Repository describes player-log persistence needs from use cases.
// Upserts are keyed by (match_id, map_num, discord_id); unresolved rows
// carry map_num 0.
type Repository interface {
	UpsertRows(ctx context.Context, items []AssignedRow) (int, error)
	ListByDiscordID(ctx context.Context, discordID string, season int) ([]AssignedRow, error)
	ListByMatch(ctx context.Context, matchID string) ([]AssignedRow, error)
}
