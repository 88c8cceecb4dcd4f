package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codcl/league-stats/internal/domain/gamemap"
)

type mapKey struct {
	matchID string
	mapNum  int
}

type GameMapRepository struct {
	mu    sync.RWMutex
	byKey map[mapKey]gamemap.Record
}

func NewGameMapRepository(items []gamemap.Record) *GameMapRepository {
	byKey := make(map[mapKey]gamemap.Record, len(items))
	for _, item := range items {
		byKey[mapKey{matchID: item.MatchID, mapNum: item.MapNum}] = item
	}
	return &GameMapRepository{byKey: byKey}
}

func (r *GameMapRepository) UpsertMaps(_ context.Context, items []gamemap.Record) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := 0
	for _, item := range items {
		if strings.TrimSpace(item.MatchID) == "" || item.MapNum <= 0 {
			continue
		}
		r.byKey[mapKey{matchID: item.MatchID, mapNum: item.MapNum}] = item
		written++
	}
	return written, nil
}

func (r *GameMapRepository) ListByMatch(_ context.Context, matchID string) ([]gamemap.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gamemap.Record, 0, 8)
	for key, item := range r.byKey {
		if key.matchID == matchID {
			out = append(out, item)
		}
	}
	sortMaps(out)
	return out, nil
}

func (r *GameMapRepository) ListBySeason(_ context.Context, season int) ([]gamemap.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gamemap.Record, 0, len(r.byKey))
	for _, item := range r.byKey {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sortMaps(out)
	return out, nil
}

func (r *GameMapRepository) ListByMatchIDs(_ context.Context, matchIDs []string) ([]gamemap.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(matchIDs))
	for _, matchID := range matchIDs {
		wanted[matchID] = true
	}
	out := make([]gamemap.Record, 0, len(matchIDs))
	for key, item := range r.byKey {
		if wanted[key.matchID] {
			out = append(out, item)
		}
	}
	sortMaps(out)
	return out, nil
}

func sortMaps(items []gamemap.Record) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchID != items[j].MatchID {
			return items[i].MatchID < items[j].MatchID
		}
		return items[i].MapNum < items[j].MapNum
	})
}
