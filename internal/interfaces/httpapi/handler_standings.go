package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/codcl/league-stats/internal/domain/season"
	"github.com/codcl/league-stats/internal/domain/standings"
	"github.com/codcl/league-stats/internal/usecase"
)

type standingsRowResponse struct {
	Team         string `json:"team"`
	SeriesWins   int    `json:"series_wins"`
	SeriesLosses int    `json:"series_losses"`
	MapWins      int    `json:"map_wins"`
	MapLosses    int    `json:"map_losses"`
	MapDiff      int    `json:"map_diff"`
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	seasonNum, err := seasonPathValue(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	league := season.League(strings.ToLower(strings.TrimSpace(r.PathValue("league"))))

	rows, err := h.standingsService.StandingsByLeague(ctx, seasonNum, league)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toStandingsResponse(rows))
}

func (h *Handler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStandings")
	defer span.End()

	seasonNum, err := seasonPathValue(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tables, err := h.standingsService.SeasonStandings(ctx, seasonNum)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]standingsRowResponse, len(tables))
	for league, rows := range tables {
		out[string(league)] = toStandingsResponse(rows)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func seasonPathValue(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("season"))
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput)
	}
	return value, nil
}

func toStandingsResponse(rows []standings.Row) []standingsRowResponse {
	out := make([]standingsRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsRowResponse{
			Team:         row.Team,
			SeriesWins:   row.SeriesWins,
			SeriesLosses: row.SeriesLosses,
			MapWins:      row.MapWins,
			MapLosses:    row.MapLosses,
			MapDiff:      row.MapDiff,
		})
	}
	return out
}
