package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/codcl/league-stats/internal/platform/logging"
	"github.com/codcl/league-stats/internal/platform/resilience"
	"github.com/codcl/league-stats/internal/usecase"
)

const defaultBaseURL = "https://sheets.googleapis.com"

var apiKeyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)
var errSheetsTransient = crerr.New("sheets transient failure")

// RangeSet names the four A1 ranges holding one season's data.
type RangeSet struct {
	Players    string
	Series     string
	Maps       string
	PlayerLogs string
}

// defaultRangesForSeason follows the sheet's tab naming convention. Header
// rows live on row 1, so data ranges start at row 2.
func defaultRangesForSeason(seasonNum int) RangeSet {
	return RangeSet{
		Players:    fmt.Sprintf("S%d Players!A2:H", seasonNum),
		Series:     fmt.Sprintf("S%d Series!A2:F", seasonNum),
		Maps:       fmt.Sprintf("S%d Maps!A2:F", seasonNum),
		PlayerLogs: fmt.Sprintf("S%d Logs!A2:L", seasonNum),
	}
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	SpreadsheetID  string
	Timeout        time.Duration
	MaxRetries     int
	RangesBySeason map[int]RangeSet
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads league data out of a Google spreadsheet through the values
// batchGet endpoint. It satisfies usecase.SheetSource.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	spreadsheetID  string
	maxRetries     int
	rangesBySeason map[int]RangeSet
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		spreadsheetID:  strings.TrimSpace(cfg.SpreadsheetID),
		maxRetries:     maxRetries,
		rangesBySeason: cfg.RangesBySeason,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type valueRange struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

type batchGetEnvelope struct {
	SpreadsheetID string       `json:"spreadsheetId"`
	ValueRanges   []valueRange `json:"valueRanges"`
}

// FetchSeasonBatch pulls the season's four ranges in one batchGet call.
// The response preserves request order, so ranges map back positionally.
func (c *Client) FetchSeasonBatch(ctx context.Context, seasonNum int) (usecase.RawBatch, error) {
	if seasonNum <= 0 {
		return usecase.RawBatch{}, fmt.Errorf("season must be greater than zero")
	}
	if c.spreadsheetID == "" {
		return usecase.RawBatch{}, fmt.Errorf("spreadsheet id is not configured")
	}

	ranges := c.seasonRanges(seasonNum)
	ordered := []string{ranges.Players, ranges.Series, ranges.Maps, ranges.PlayerLogs}

	var envelope batchGetEnvelope
	if err := c.doJSON(ctx, ordered, &envelope); err != nil {
		return usecase.RawBatch{}, fmt.Errorf("fetch season %d ranges: %w", seasonNum, err)
	}
	if len(envelope.ValueRanges) != len(ordered) {
		return usecase.RawBatch{}, fmt.Errorf("expected %d value ranges, got %d", len(ordered), len(envelope.ValueRanges))
	}

	return usecase.RawBatch{
		Season:     seasonNum,
		Players:    envelope.ValueRanges[0].Values,
		Series:     envelope.ValueRanges[1].Values,
		Maps:       envelope.ValueRanges[2].Values,
		PlayerLogs: envelope.ValueRanges[3].Values,
	}, nil
}

func (c *Client) seasonRanges(seasonNum int) RangeSet {
	if override, ok := c.rangesBySeason[seasonNum]; ok {
		return override
	}
	return defaultRangesForSeason(seasonNum)
}

func (c *Client) doJSON(ctx context.Context, ranges []string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sheets circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sheet source is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for _, item := range ranges {
		values.Add("ranges", item)
	}
	values.Set("valueRenderOption", "UNFORMATTED_VALUE")
	if c.apiKey != "" {
		values.Set("key", c.apiKey)
	}

	fullURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values:batchGet?%s",
		c.baseURL, url.PathEscape(c.spreadsheetID), values.Encode())

	key := c.spreadsheetID + "|" + strings.Join(ranges, "|")
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errSheetsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode sheets payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSheetsTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSheetsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: sheets status=%d body=%s", errSheetsTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("sheets status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("sheets request failed")
	}
	c.logger.WarnContext(ctx, "sheets request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func redactAPIURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "key=REDACTED")
}
