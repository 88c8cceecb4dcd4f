package usecase

import (
	"context"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/series"
)

type stubSheetSource struct {
	batches map[int]RawBatch
	err     error
}

func (s *stubSheetSource) FetchSeasonBatch(_ context.Context, seasonNum int) (RawBatch, error) {
	if s.err != nil {
		return RawBatch{}, s.err
	}
	return s.batches[seasonNum], nil
}

type stubPlayerRepo struct {
	byID      map[string]player.Player
	upsertErr error
}

func newStubPlayerRepo(items ...player.Player) *stubPlayerRepo {
	repo := &stubPlayerRepo{byID: map[string]player.Player{}}
	for _, item := range items {
		repo.byID[item.DiscordID] = item
	}
	return repo
}

func (s *stubPlayerRepo) UpsertPlayers(_ context.Context, items []player.Player) (int, error) {
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	for _, item := range items {
		s.byID[item.DiscordID] = item
	}
	return len(items), nil
}

func (s *stubPlayerRepo) GetByDiscordID(_ context.Context, discordID string) (player.Player, bool, error) {
	item, ok := s.byID[discordID]
	return item, ok, nil
}

func (s *stubPlayerRepo) List(_ context.Context) ([]player.Player, error) {
	out := make([]player.Player, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

type stubSeriesRepo struct {
	items     []series.Series
	upsertErr error
}

func (s *stubSeriesRepo) UpsertSeries(_ context.Context, items []series.Series) (int, error) {
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	s.items = append(s.items, items...)
	return len(items), nil
}

func (s *stubSeriesRepo) GetByMatchID(_ context.Context, matchID string) (series.Series, bool, error) {
	for _, item := range s.items {
		if item.MatchID == matchID {
			return item, true, nil
		}
	}
	return series.Series{}, false, nil
}

func (s *stubSeriesRepo) ListBySeason(_ context.Context, season int) ([]series.Series, error) {
	out := make([]series.Series, 0, len(s.items))
	for _, item := range s.items {
		if item.Season == season {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubSeriesRepo) ListByMatchIDs(_ context.Context, matchIDs []string) ([]series.Series, error) {
	wanted := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = true
	}
	out := make([]series.Series, 0, len(matchIDs))
	for _, item := range s.items {
		if wanted[item.MatchID] {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubMapRepo struct {
	items     []gamemap.Record
	upsertErr error
}

func (s *stubMapRepo) UpsertMaps(_ context.Context, items []gamemap.Record) (int, error) {
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	s.items = append(s.items, items...)
	return len(items), nil
}

func (s *stubMapRepo) ListByMatch(_ context.Context, matchID string) ([]gamemap.Record, error) {
	out := make([]gamemap.Record, 0, len(s.items))
	for _, item := range s.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMapRepo) ListBySeason(_ context.Context, season int) ([]gamemap.Record, error) {
	out := make([]gamemap.Record, 0, len(s.items))
	for _, item := range s.items {
		if item.Season == season {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMapRepo) ListByMatchIDs(_ context.Context, matchIDs []string) ([]gamemap.Record, error) {
	wanted := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = true
	}
	out := make([]gamemap.Record, 0, len(s.items))
	for _, item := range s.items {
		if wanted[item.MatchID] {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubLogRepo struct {
	items     []playerlog.AssignedRow
	upsertErr error
}

func (s *stubLogRepo) UpsertRows(_ context.Context, items []playerlog.AssignedRow) (int, error) {
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	s.items = append(s.items, items...)
	return len(items), nil
}

func (s *stubLogRepo) ListByDiscordID(_ context.Context, discordID string, season int) ([]playerlog.AssignedRow, error) {
	out := make([]playerlog.AssignedRow, 0, len(s.items))
	for _, item := range s.items {
		if item.DiscordID != discordID {
			continue
		}
		if season != 0 && item.Season != season {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubLogRepo) ListByMatch(_ context.Context, matchID string) ([]playerlog.AssignedRow, error) {
	out := make([]playerlog.AssignedRow, 0, len(s.items))
	for _, item := range s.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}
