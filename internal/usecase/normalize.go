package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/player"
	"github.com/codcl/league-stats/internal/domain/playerlog"
	"github.com/codcl/league-stats/internal/domain/series"
)

// Column positions per range. The upstream sheets enforce no schema, so
// these offsets are part of this service's input contract.
const (
	playerColDiscordID = iota
	playerColName
	playerColRank
	playerColWomensEligible
	playerColTeamLowers
	playerColTeamUppers
	playerColTeamLegends
	playerColTeamWomens
)

const (
	seriesColMatchID = iota
	seriesColDate
	seriesColHomeTeam
	seriesColAwayTeam
	seriesColHomeWins
	seriesColAwayLosses
)

const (
	mapColMatchID = iota
	mapColMapNum
	mapColMode
	mapColMapName
	mapColWinnerTeam
	mapColLoserTeam
)

const (
	logColMatchID = iota
	logColDiscordID
	logColTeam
	logColMode
	logColKills
	logColDeaths
	logColAssists
	logColHillTime
	logColPlants
	logColDefuses
	logColTicks
	logColWriteIn
)

var (
	isoDateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	shortDateRegex = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)
)

var genericDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// normalizeDate tries three strategies in order: ISO passthrough, short
// month/day combined with the current calendar year, then a generic
// calendar parse. No default date is ever substituted.
func normalizeDate(raw string, today time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if isoDateRegex.MatchString(raw) {
		return raw, true
	}

	if m := shortDateRegex.FindStringSubmatch(raw); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", today.Year(), month, day), true
	}

	for _, layout := range genericDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}
	return "", false
}

// cellString renders a cell as a trimmed string. Numeric cells that hold
// whole values lose their trailing ".0" so ids copied from the sheet as
// numbers still match their string forms.
func cellString(cells []any, idx int) string {
	if idx >= len(cells) || cells[idx] == nil {
		return ""
	}
	switch v := cells[idx].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// cellFloat coerces a cell to a finite number; anything else becomes 0.
func cellFloat(cells []any, idx int) float64 {
	if idx >= len(cells) || cells[idx] == nil {
		return 0
	}
	var value float64
	switch v := cells[idx].(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		value = parsed
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func cellInt(cells []any, idx int) int {
	return int(cellFloat(cells, idx))
}

func cellBool(cells []any, idx int) bool {
	if idx >= len(cells) || cells[idx] == nil {
		return false
	}
	if b, ok := cells[idx].(bool); ok {
		return b
	}
	switch strings.ToLower(cellString(cells, idx)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

func parsePlayerRow(cells []any) (player.Player, bool) {
	discordID := cellString(cells, playerColDiscordID)
	name := cellString(cells, playerColName)
	if discordID == "" || name == "" {
		return player.Player{}, false
	}

	rankRaw := cellString(cells, playerColRank)
	rank, err := strconv.ParseFloat(rankRaw, 64)
	rankNA := rankRaw == "" || err != nil

	teams := map[string]string{}
	for slug, idx := range map[string]int{
		"lowers":  playerColTeamLowers,
		"uppers":  playerColTeamUppers,
		"legends": playerColTeamLegends,
		"womens":  playerColTeamWomens,
	} {
		if team := cellString(cells, idx); team != "" {
			teams[slug] = team
		}
	}

	return player.Player{
		DiscordID:      discordID,
		Name:           name,
		Rank:           rank,
		RankNA:         rankNA,
		WomensEligible: cellBool(cells, playerColWomensEligible),
		TeamsByLeague:  teams,
	}, true
}

func parseSeriesRow(cells []any, seasonNum int, today time.Time) (series.Series, bool) {
	matchID := cellString(cells, seriesColMatchID)
	if matchID == "" {
		return series.Series{}, false
	}

	date, ok := normalizeDate(cellString(cells, seriesColDate), today)
	if !ok {
		return series.Series{}, false
	}

	return series.Series{
		MatchID:    matchID,
		MatchDate:  date,
		HomeTeam:   cellString(cells, seriesColHomeTeam),
		AwayTeam:   cellString(cells, seriesColAwayTeam),
		HomeWins:   cellInt(cells, seriesColHomeWins),
		AwayLosses: cellInt(cells, seriesColAwayLosses),
		Season:     seasonNum,
	}, true
}

func parseMapRow(cells []any, seasonNum int) (gamemap.Record, bool) {
	matchID := cellString(cells, mapColMatchID)
	mapNum := cellInt(cells, mapColMapNum)
	if matchID == "" || mapNum <= 0 {
		return gamemap.Record{}, false
	}

	return gamemap.Record{
		MatchID:    matchID,
		MapNum:     mapNum,
		Mode:       cellString(cells, mapColMode),
		MapName:    cellString(cells, mapColMapName),
		WinnerTeam: cellString(cells, mapColWinnerTeam),
		LoserTeam:  cellString(cells, mapColLoserTeam),
		Season:     seasonNum,
	}, true
}

func parseLogRow(cells []any, seasonNum, sourceRow int) (playerlog.Row, bool) {
	matchID := cellString(cells, logColMatchID)
	discordID := cellString(cells, logColDiscordID)
	if matchID == "" || discordID == "" {
		return playerlog.Row{}, false
	}

	return playerlog.Row{
		MatchID:   matchID,
		DiscordID: discordID,
		Team:      cellString(cells, logColTeam),
		Mode:      cellString(cells, logColMode),
		Kills:     cellInt(cells, logColKills),
		Deaths:    cellInt(cells, logColDeaths),
		Assists:   cellInt(cells, logColAssists),
		HillTime:  cellInt(cells, logColHillTime),
		Plants:    cellInt(cells, logColPlants),
		Defuses:   cellInt(cells, logColDefuses),
		Ticks:     cellInt(cells, logColTicks),
		WriteIn:   cellString(cells, logColWriteIn),
		SourceRow: sourceRow,
		Season:    seasonNum,
	}, true
}
