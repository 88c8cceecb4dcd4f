package player

import "context"

// Repository describes player persistence needs from use cases.
// Upserts are keyed by discord_id and idempotent.
type Repository interface {
	UpsertPlayers(ctx context.Context, items []Player) (int, error)
	GetByDiscordID(ctx context.Context, discordID string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
}
