package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/codcl/league-stats/internal/platform/logging"
)

func newTestIngestionService(
	source SheetSource,
	playerRepo *stubPlayerRepo,
	seriesRepo *stubSeriesRepo,
	mapRepo *stubMapRepo,
	logRepo *stubLogRepo,
) *IngestionService {
	svc := NewIngestionService(source, playerRepo, seriesRepo, mapRepo, logRepo, logging.NewNop())
	svc.now = func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestIngestionService_IngestSeason_InvalidSeason(t *testing.T) {
	t.Parallel()

	svc := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, &stubLogRepo{})

	_, err := svc.IngestSeason(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestionService_IngestSeason_SourceUnavailable(t *testing.T) {
	t.Parallel()

	source := &stubSheetSource{err: errors.New("upstream timeout")}
	logRepo := &stubLogRepo{}
	svc := newTestIngestionService(source, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, logRepo)

	_, err := svc.IngestSeason(context.Background(), 3)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if len(logRepo.items) != 0 {
		t.Fatalf("expected no writes on fetch failure, got %d rows", len(logRepo.items))
	}
}

func TestIngestionService_Ingest_FixedChunkSeason(t *testing.T) {
	t.Parallel()

	batch := RawBatch{
		Season: 3,
		Players: [][]any{
			{"d1", "Alpha", "3.5", false, "Blackout", "", "", ""},
			{"d2", "Bravo", "2.0", false, "Spawn Flippers", "", "", ""},
		},
		Series: [][]any{
			{"m1", "4/12", "Blackout", "Spawn Flippers", float64(2), float64(1)},
		},
		Maps: [][]any{
			{"m1", float64(1), "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"},
			{"m1", float64(2), "Search and Destroy", "Highrise", "Spawn Flippers", "Blackout"},
		},
		PlayerLogs: logRowsFor("m1", "Hardpoint", 8, 0),
	}
	batch.PlayerLogs = append(batch.PlayerLogs, logRowsFor("m1", "Search and Destroy", 8, 8)...)

	seriesRepo := &stubSeriesRepo{}
	mapRepo := &stubMapRepo{}
	logRepo := &stubLogRepo{}
	svc := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), seriesRepo, mapRepo, logRepo)

	report, err := svc.Ingest(context.Background(), batch)
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}

	if report.PlayersUpserted != 2 || report.SeriesUpserted != 1 || report.MapsUpserted != 2 {
		t.Fatalf("unexpected upsert counts: %+v", report)
	}
	if report.LogRowsUpserted != 16 || report.UnresolvedRows != 0 {
		t.Fatalf("unexpected log counts: %+v", report)
	}
	if report.RunID == "" {
		t.Fatal("expected a run id")
	}

	if seriesRepo.items[0].MatchDate != "2026-04-12" {
		t.Fatalf("expected short date to pick up the current year, got %q", seriesRepo.items[0].MatchDate)
	}

	for i, row := range logRepo.items {
		wantMap := i/8 + 1
		if !row.Resolved || row.MapNum != wantMap {
			t.Fatalf("row %d: expected map %d resolved, got map=%d resolved=%v", i, wantMap, row.MapNum, row.Resolved)
		}
	}
}

func TestIngestionService_Ingest_LegacyRunAssignment(t *testing.T) {
	t.Parallel()

	batch := RawBatch{
		Season: 1,
		Series: [][]any{
			{"m1", "2024-02-01", "Blackout", "Hill Crashers", float64(1), float64(2)},
		},
		Maps: [][]any{
			{"m1", float64(1), "Hardpoint", "Karachi", "Hill Crashers", "Blackout"},
			{"m1", float64(2), "Search and Destroy", "Highrise", "Blackout", "Hill Crashers"},
			{"m1", float64(3), "Search and Destroy", "Invasion", "Blackout", "Hill Crashers"},
		},
		PlayerLogs: logRowsFor("m1", "Hardpoint", 2, 0),
	}
	batch.PlayerLogs = append(batch.PlayerLogs, logRowsFor("m1", "Search and Destroy", 16, 2)...)

	logRepo := &stubLogRepo{}
	svc := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, logRepo)

	report, err := svc.Ingest(context.Background(), batch)
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if report.UnresolvedRows != 0 {
		t.Fatalf("expected every row resolved, got %d unresolved", report.UnresolvedRows)
	}

	wantMaps := []int{1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3}
	if len(logRepo.items) != len(wantMaps) {
		t.Fatalf("expected %d rows, got %d", len(wantMaps), len(logRepo.items))
	}
	for i, row := range logRepo.items {
		if row.MapNum != wantMaps[i] {
			t.Fatalf("row %d: expected map %d, got %d", i, wantMaps[i], row.MapNum)
		}
	}
}

func TestIngestionService_Ingest_RejectsAndDedupes(t *testing.T) {
	t.Parallel()

	batch := RawBatch{
		Season: 3,
		Players: [][]any{
			{"d1", "Alpha", "3.5", false, "Blackout", "", "", ""},
			{"d1", "Alpha Again", "3.5", false, "Blackout", "", "", ""},
			{"d2", "", "2.0", false, "", "", "", ""},
		},
		Series: [][]any{
			{"m1", "2024-04-12", "Blackout", "Spawn Flippers", float64(2), float64(1)},
			{"m1", "2024-04-13", "Blackout", "Spawn Flippers", float64(2), float64(1)},
			{"m2", "n/a", "Blackout", "Spawn Flippers", float64(0), float64(0)},
		},
		Maps: [][]any{
			{"m1", float64(1), "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"},
			{"m1", float64(1), "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"},
			{"m1", float64(0), "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"},
		},
		PlayerLogs: append(
			logRowsFor("m1", "Hardpoint", 9, 0),
			[]any{"m1", "", "Blackout", "Hardpoint", float64(1), float64(1), float64(0), float64(0), float64(0), float64(0), float64(0), ""},
		),
	}

	logRepo := &stubLogRepo{}
	svc := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, logRepo)

	report, err := svc.Ingest(context.Background(), batch)
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}

	if report.PlayersUpserted != 1 || report.PlayersDropped != 1 {
		t.Fatalf("unexpected player counts: %+v", report)
	}
	if report.SeriesUpserted != 1 || report.SeriesRejected != 1 {
		t.Fatalf("unexpected series counts: %+v", report)
	}
	if report.MapsUpserted != 1 || report.MapsDropped != 1 {
		t.Fatalf("unexpected map counts: %+v", report)
	}
	if report.DuplicatesDropped != 3 {
		t.Fatalf("expected 3 duplicates dropped, got %d", report.DuplicatesDropped)
	}
	if report.LogRowsDropped != 1 {
		t.Fatalf("expected 1 log row dropped, got %d", report.LogRowsDropped)
	}
	if report.UnresolvedRows != 1 {
		t.Fatalf("expected 1 unresolved row, got %d", report.UnresolvedRows)
	}

	unresolved := 0
	for _, row := range logRepo.items {
		if !row.Resolved {
			unresolved++
			if row.MapNum != 0 {
				t.Fatalf("unresolved row must carry map 0, got %d", row.MapNum)
			}
		}
	}
	if unresolved != 1 {
		t.Fatalf("expected 1 persisted unresolved row, got %d", unresolved)
	}
}

func TestIngestionService_Ingest_DisplayTags(t *testing.T) {
	t.Parallel()

	batch := RawBatch{
		Season: 3,
		Players: [][]any{
			{"d0", "Loyal", "3.0", false, "Blackout", "", "", ""},
			{"d1", "Moved", "3.0", false, "Wallbang City", "", "", ""},
		},
		Series: [][]any{
			{"m1", "2026-04-12", "Blackout", "Spawn Flippers", float64(1), float64(0)},
		},
		Maps: [][]any{
			{"m1", float64(1), "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"},
		},
		PlayerLogs: logRowsFor("m1", "Hardpoint", 8, 0),
	}
	// d2 carries an explicit sub marker in the write-in column.
	batch.PlayerLogs[2][11] = "ESub"

	logRepo := &stubLogRepo{}
	svc := newTestIngestionService(&stubSheetSource{}, newStubPlayerRepo(), &stubSeriesRepo{}, &stubMapRepo{}, logRepo)

	if _, err := svc.Ingest(context.Background(), batch); err != nil {
		t.Fatalf("Ingest error: %v", err)
	}

	tags := map[string]string{}
	for _, row := range logRepo.items {
		tags[row.DiscordID] = row.Tag
	}
	if tags["d0"] != "" {
		t.Fatalf("expected no tag for a player on their roster team, got %q", tags["d0"])
	}
	if tags["d1"] != "Released" {
		t.Fatalf("expected Released for a player off their roster team, got %q", tags["d1"])
	}
	if tags["d2"] != "ESub" {
		t.Fatalf("expected ESub from the write-in column, got %q", tags["d2"])
	}
}

// logRowsFor builds count raw log rows for one match and mode, with discord
// ids d0..d(count-1) offset by start and teams alternating Blackout and
// Spawn Flippers.
func logRowsFor(matchID, mode string, count, start int) [][]any {
	out := make([][]any, 0, count)
	for i := 0; i < count; i++ {
		team := "Blackout"
		if i%2 == 1 {
			team = "Spawn Flippers"
		}
		out = append(out, []any{
			matchID,
			fmt.Sprintf("d%d", start+i),
			team,
			mode,
			float64(10 + i),
			float64(5 + i),
			float64(i),
			float64(0),
			float64(0),
			float64(0),
			float64(0),
			"",
		})
	}
	return out
}
