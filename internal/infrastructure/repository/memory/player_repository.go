package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codcl/league-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu   sync.RWMutex
	byID map[string]player.Player
}

func NewPlayerRepository(items []player.Player) *PlayerRepository {
	byID := make(map[string]player.Player, len(items))
	for _, item := range items {
		byID[item.DiscordID] = item
	}
	return &PlayerRepository{byID: byID}
}

func (r *PlayerRepository) UpsertPlayers(_ context.Context, items []player.Player) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := 0
	for _, item := range items {
		if strings.TrimSpace(item.DiscordID) == "" {
			continue
		}
		r.byID[item.DiscordID] = item
		written++
	}
	return written, nil
}

func (r *PlayerRepository) GetByDiscordID(_ context.Context, discordID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[discordID]
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].DiscordID < out[j].DiscordID
	})
	return out, nil
}
