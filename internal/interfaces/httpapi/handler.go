package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/platform/logging"
	"github.com/codcl/league-stats/internal/usecase"
)

type Handler struct {
	statsService     *usecase.PlayerStatsService
	standingsService *usecase.StandingsService
	ingestionService *usecase.IngestionService
	resyncService    *usecase.ResyncService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	statsService *usecase.PlayerStatsService,
	standingsService *usecase.StandingsService,
	ingestionService *usecase.IngestionService,
	resyncService *usecase.ResyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService:     statsService,
		standingsService: standingsService,
		ingestionService: ingestionService,
		resyncService:    resyncService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]any{
		"status":         "ok",
		"current_season": season.Current,
	})
}

// seasonQuery reads an optional ?season= parameter. Absent or empty means
// all seasons (0); a malformed value is a client error.
func seasonQuery(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
