package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codcl/league-stats/internal/domain/playerlog"
)

type logKey struct {
	matchID   string
	mapNum    int
	discordID string
}

type PlayerLogRepository struct {
	mu    sync.RWMutex
	byKey map[logKey]playerlog.AssignedRow
}

func NewPlayerLogRepository(items []playerlog.AssignedRow) *PlayerLogRepository {
	byKey := make(map[logKey]playerlog.AssignedRow, len(items))
	for _, item := range items {
		byKey[logKey{matchID: item.MatchID, mapNum: item.MapNum, discordID: item.DiscordID}] = item
	}
	return &PlayerLogRepository{byKey: byKey}
}

func (r *PlayerLogRepository) UpsertRows(_ context.Context, items []playerlog.AssignedRow) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := 0
	for _, item := range items {
		if strings.TrimSpace(item.MatchID) == "" || strings.TrimSpace(item.DiscordID) == "" {
			continue
		}
		r.byKey[logKey{matchID: item.MatchID, mapNum: item.MapNum, discordID: item.DiscordID}] = item
		written++
	}
	return written, nil
}

func (r *PlayerLogRepository) ListByDiscordID(_ context.Context, discordID string, season int) ([]playerlog.AssignedRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerlog.AssignedRow, 0, 32)
	for key, item := range r.byKey {
		if key.discordID != discordID {
			continue
		}
		if season != 0 && item.Season != season {
			continue
		}
		out = append(out, item)
	}
	sortLogRows(out)
	return out, nil
}

func (r *PlayerLogRepository) ListByMatch(_ context.Context, matchID string) ([]playerlog.AssignedRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerlog.AssignedRow, 0, 32)
	for key, item := range r.byKey {
		if key.matchID == matchID {
			out = append(out, item)
		}
	}
	sortLogRows(out)
	return out, nil
}

func sortLogRows(items []playerlog.AssignedRow) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchID != items[j].MatchID {
			return items[i].MatchID < items[j].MatchID
		}
		return items[i].SourceRow < items[j].SourceRow
	})
}
