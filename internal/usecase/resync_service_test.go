package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/codcl/league-stats/internal/platform/logging"
)

func TestResyncService_ResyncRange(t *testing.T) {
	t.Parallel()

	source := &stubSheetSource{batches: map[int]RawBatch{
		1: {Series: [][]any{{"s1-m1", "2024-02-01", "Blackout", "Hill Crashers", float64(2), float64(0)}}},
		2: {Series: [][]any{{"s2-m1", "2025-02-01", "Blackout", "Wallbang City", float64(2), float64(1)}}},
		3: {Series: [][]any{{"s3-m1", "2026-02-01", "Blackout", "Spawn Flippers", float64(3), float64(0)}}},
	}}
	seriesRepo := &stubSeriesRepo{}
	ingestion := newTestIngestionService(source, newStubPlayerRepo(), seriesRepo, &stubMapRepo{}, &stubLogRepo{})
	// One worker keeps the shared stubs free of concurrent writes.
	svc := NewResyncService(ingestion, 1, logging.NewNop())

	got, err := svc.ResyncRange(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("ResyncRange error: %v", err)
	}

	if got.Failed != 0 {
		t.Fatalf("expected no failures, got %d", got.Failed)
	}
	if len(got.Seasons) != 3 {
		t.Fatalf("expected 3 season results, got %d", len(got.Seasons))
	}
	for i, result := range got.Seasons {
		if result.Season != i+1 {
			t.Fatalf("expected results ordered by season, got %+v", got.Seasons)
		}
		if !result.OK || result.Report.SeriesUpserted != 1 {
			t.Fatalf("unexpected season %d result: %+v", result.Season, result)
		}
	}
	if len(seriesRepo.items) != 3 {
		t.Fatalf("expected 3 series written, got %d", len(seriesRepo.items))
	}
}

func TestResyncService_ResyncRange_PartialFailure(t *testing.T) {
	t.Parallel()

	ingestion := newTestIngestionService(&stubSheetSource{err: errors.New("upstream down")}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, &stubLogRepo{})
	svc := NewResyncService(ingestion, 1, logging.NewNop())

	got, err := svc.ResyncRange(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ResyncRange error: %v", err)
	}
	if got.Failed != 2 {
		t.Fatalf("expected both seasons to fail, got %d", got.Failed)
	}
	for _, result := range got.Seasons {
		if result.OK || result.Error == "" {
			t.Fatalf("expected a recorded error for season %d: %+v", result.Season, result)
		}
	}
}

func TestResyncService_ResyncRange_InvalidRange(t *testing.T) {
	t.Parallel()

	ingestion := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, &stubLogRepo{})
	svc := NewResyncService(ingestion, 2, logging.NewNop())

	if _, err := svc.ResyncRange(context.Background(), 3, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
