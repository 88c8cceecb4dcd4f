package httpapi

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/codcl/league-stats/internal/domain/playerstats"
	"github.com/codcl/league-stats/internal/usecase"
)

type modeBreakdownResponse struct {
	Mode      string `json:"mode"`
	Kills     int    `json:"kills"`
	Deaths    int    `json:"deaths"`
	Assists   int    `json:"assists"`
	KD        string `json:"kd"`
	MapWins   int    `json:"map_wins"`
	MapLosses int    `json:"map_losses"`
	HillTime  int    `json:"hill_time"`
	Plants    int    `json:"plants"`
	Defuses   int    `json:"defuses"`
	Ticks     int    `json:"ticks"`
}

type aggregateResponse struct {
	DiscordID    string                  `json:"discord_id"`
	Name         string                  `json:"name"`
	Kills        int                     `json:"kills"`
	Deaths       int                     `json:"deaths"`
	Assists      int                     `json:"assists"`
	KD           string                  `json:"kd"`
	SeriesWins   int                     `json:"series_wins"`
	SeriesLosses int                     `json:"series_losses"`
	MapWins      int                     `json:"map_wins"`
	MapLosses    int                     `json:"map_losses"`
	Unresolved   int                     `json:"unresolved_rows"`
	Modes        []modeBreakdownResponse `json:"modes"`
}

type mapLineResponse struct {
	MapNum  int    `json:"map_num"`
	Mode    string `json:"mode"`
	MapName string `json:"map_name,omitempty"`
	Kills   int    `json:"kills"`
	Deaths  int    `json:"deaths"`
	Assists int    `json:"assists"`
	Won     bool   `json:"won"`
	Tag     string `json:"tag,omitempty"`
}

type matchSummaryResponse struct {
	MatchID        string            `json:"match_id"`
	MatchDate      string            `json:"match_date"`
	HomeTeam       string            `json:"home_team"`
	AwayTeam       string            `json:"away_team"`
	HomeWins       int               `json:"home_wins"`
	AwayLosses     int               `json:"away_losses"`
	Season         int               `json:"season"`
	Team           string            `json:"team"`
	Maps           []mapLineResponse `json:"maps"`
	UnresolvedRows int               `json:"unresolved_rows"`
}

type profileResponse struct {
	Aggregate aggregateResponse      `json:"aggregate"`
	History   []matchSummaryResponse `json:"history"`
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	discordID := strings.TrimSpace(r.PathValue("discordID"))
	seasonNum, ok := seasonQuery(r)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: season must be a non-negative integer", usecase.ErrInvalidInput))
		return
	}

	profile, err := h.statsService.Profile(ctx, discordID, seasonNum)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileResponse{
		Aggregate: toAggregateResponse(profile.Aggregate),
		History:   toHistoryResponse(profile.History),
	})
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	discordID := strings.TrimSpace(r.PathValue("discordID"))
	seasonNum, ok := seasonQuery(r)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: season must be a non-negative integer", usecase.ErrInvalidInput))
		return
	}

	aggregate, err := h.statsService.Aggregate(ctx, discordID, seasonNum)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toAggregateResponse(aggregate))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	discordID := strings.TrimSpace(r.PathValue("discordID"))
	history, err := h.statsService.MatchHistory(ctx, discordID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toHistoryResponse(history))
}

func toAggregateResponse(aggregate playerstats.Aggregate) aggregateResponse {
	modes := make([]modeBreakdownResponse, 0, len(aggregate.Modes))
	for _, breakdown := range aggregate.Modes {
		modes = append(modes, modeBreakdownResponse{
			Mode:      breakdown.Mode,
			Kills:     breakdown.Kills,
			Deaths:    breakdown.Deaths,
			Assists:   breakdown.Assists,
			KD:        breakdown.KD().String(),
			MapWins:   breakdown.MapWins,
			MapLosses: breakdown.MapLosses,
			HillTime:  breakdown.HillTime,
			Plants:    breakdown.Plants,
			Defuses:   breakdown.Defuses,
			Ticks:     breakdown.Ticks,
		})
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i].Mode < modes[j].Mode })

	return aggregateResponse{
		DiscordID:    aggregate.DiscordID,
		Name:         aggregate.Name,
		Kills:        aggregate.Kills,
		Deaths:       aggregate.Deaths,
		Assists:      aggregate.Assists,
		KD:           aggregate.KD().String(),
		SeriesWins:   aggregate.SeriesWins,
		SeriesLosses: aggregate.SeriesLosses,
		MapWins:      aggregate.MapWins,
		MapLosses:    aggregate.MapLosses,
		Unresolved:   aggregate.Unresolved,
		Modes:        modes,
	}
}

func toHistoryResponse(history []playerstats.MatchSummary) []matchSummaryResponse {
	out := make([]matchSummaryResponse, 0, len(history))
	for _, summary := range history {
		maps := make([]mapLineResponse, 0, len(summary.Maps))
		for _, line := range summary.Maps {
			maps = append(maps, mapLineResponse{
				MapNum:  line.MapNum,
				Mode:    line.Mode,
				MapName: line.MapName,
				Kills:   line.Kills,
				Deaths:  line.Deaths,
				Assists: line.Assists,
				Won:     line.Won,
				Tag:     line.Tag,
			})
		}
		out = append(out, matchSummaryResponse{
			MatchID:        summary.MatchID,
			MatchDate:      summary.MatchDate,
			HomeTeam:       summary.HomeTeam,
			AwayTeam:       summary.AwayTeam,
			HomeWins:       summary.HomeWins,
			AwayLosses:     summary.AwayLosses,
			Season:         summary.Season,
			Team:           summary.Team,
			Maps:           maps,
			UnresolvedRows: summary.UnresolvedRows,
		})
	}
	return out
}
