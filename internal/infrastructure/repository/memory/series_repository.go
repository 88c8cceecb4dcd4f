package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codcl/league-stats/internal/domain/series"
)

type SeriesRepository struct {
	mu   sync.RWMutex
	byID map[string]series.Series
}

func NewSeriesRepository(items []series.Series) *SeriesRepository {
	byID := make(map[string]series.Series, len(items))
	for _, item := range items {
		byID[item.MatchID] = item
	}
	return &SeriesRepository{byID: byID}
}

func (r *SeriesRepository) UpsertSeries(_ context.Context, items []series.Series) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := 0
	for _, item := range items {
		if strings.TrimSpace(item.MatchID) == "" {
			continue
		}
		r.byID[item.MatchID] = item
		written++
	}
	return written, nil
}

func (r *SeriesRepository) GetByMatchID(_ context.Context, matchID string) (series.Series, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchID]
	return item, ok, nil
}

func (r *SeriesRepository) ListBySeason(_ context.Context, season int) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0, len(r.byID))
	for _, item := range r.byID {
		if item.Season == season {
			out = append(out, item)
		}
	}
	sortSeries(out)
	return out, nil
}

func (r *SeriesRepository) ListByMatchIDs(_ context.Context, matchIDs []string) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]series.Series, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if item, ok := r.byID[matchID]; ok {
			out = append(out, item)
		}
	}
	sortSeries(out)
	return out, nil
}

func sortSeries(items []series.Series) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchDate != items[j].MatchDate {
			return items[i].MatchDate < items[j].MatchDate
		}
		return items[i].MatchID < items[j].MatchID
	})
}
