package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/codcl/league-stats/internal/platform/logging"
)

const batchGetBody = `{
	"spreadsheetId": "sheet-1",
	"valueRanges": [
		{"range": "S3 Players!A2:H", "values": [["d1", "Alpha", 3.5, false, "Blackout", "", "", ""]]},
		{"range": "S3 Series!A2:F", "values": [["m1", "2026-04-12", "Blackout", "Spawn Flippers", 2, 1]]},
		{"range": "S3 Maps!A2:F", "values": [["m1", 1, "Hardpoint", "Karachi", "Blackout", "Spawn Flippers"]]},
		{"range": "S3 Logs!A2:L", "values": [["m1", "d1", "Blackout", "Hardpoint", 21, 14, 3, 95, 0, 0, 0, ""]]}
	]
}`

func TestClient_FetchSeasonBatch(t *testing.T) {
	t.Parallel()

	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(batchGetBody))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:       server.URL,
		APIKey:        "secret-key",
		SpreadsheetID: "sheet-1",
		Logger:        logging.NewNop(),
	})

	batch, err := client.FetchSeasonBatch(context.Background(), 3)
	if err != nil {
		t.Fatalf("FetchSeasonBatch error: %v", err)
	}

	if batch.Season != 3 {
		t.Fatalf("expected season 3, got %d", batch.Season)
	}
	if len(batch.Players) != 1 || len(batch.Series) != 1 || len(batch.Maps) != 1 || len(batch.PlayerLogs) != 1 {
		t.Fatalf("unexpected range sizes: %+v", batch)
	}
	if batch.PlayerLogs[0][0] != "m1" || batch.PlayerLogs[0][4] != float64(21) {
		t.Fatalf("unexpected log row: %+v", batch.PlayerLogs[0])
	}

	if !strings.Contains(gotURL, "/v4/spreadsheets/sheet-1/values:batchGet") {
		t.Fatalf("unexpected request path: %s", gotURL)
	}
	if !strings.Contains(gotURL, "key=secret-key") {
		t.Fatalf("expected api key on request: %s", gotURL)
	}
	if !strings.Contains(gotURL, "valueRenderOption=UNFORMATTED_VALUE") {
		t.Fatalf("expected unformatted values: %s", gotURL)
	}
	if strings.Count(gotURL, "ranges=") != 4 {
		t.Fatalf("expected 4 ranges on request: %s", gotURL)
	}
}

func TestClient_FetchSeasonBatch_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(batchGetBody))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:       server.URL,
		SpreadsheetID: "sheet-1",
		MaxRetries:    2,
		Logger:        logging.NewNop(),
	})

	if _, err := client.FetchSeasonBatch(context.Background(), 3); err != nil {
		t.Fatalf("FetchSeasonBatch error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestClient_FetchSeasonBatch_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"status": "PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:       server.URL,
		SpreadsheetID: "sheet-1",
		MaxRetries:    3,
		Logger:        logging.NewNop(),
	})

	if _, err := client.FetchSeasonBatch(context.Background(), 3); err == nil {
		t.Fatal("expected an error on 403")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestClient_FetchSeasonBatch_RangeCountMismatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId": "sheet-1", "valueRanges": []}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:       server.URL,
		SpreadsheetID: "sheet-1",
		Logger:        logging.NewNop(),
	})

	if _, err := client.FetchSeasonBatch(context.Background(), 3); err == nil {
		t.Fatal("expected an error on a short valueRanges response")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText(`Get "https://sheets.googleapis.com/v4?key=abc123": dial tcp: timeout`, "abc123")
	if strings.Contains(got, "abc123") {
		t.Fatalf("api key leaked: %s", got)
	}
}

func TestDefaultRangesForSeason(t *testing.T) {
	t.Parallel()

	got := defaultRangesForSeason(2)
	if got.Players != "S2 Players!A2:H" || got.PlayerLogs != "S2 Logs!A2:L" {
		t.Fatalf("unexpected ranges: %+v", got)
	}
}
