package season

import (
	"strings"

	gslug "github.com/gosimple/slug"
)

// League is a rank-based or eligibility-based bracket teams and players
// are classified into.
type League string

const (
	LeagueLowers  League = "lowers"
	LeagueUppers  League = "uppers"
	LeagueLegends League = "legends"
	LeagueWomens  League = "womens"
	LeagueUnknown League = ""
)

// Current is the season being played right now. Seasons before it ran two
// leagues; the current one runs four.
const Current = 3

// TeamDefinition binds a team's display name to its league for one season.
type TeamDefinition struct {
	League      League
	DisplayName string
	Slug        string
}

func newTeam(league League, displayName string) TeamDefinition {
	return TeamDefinition{
		League:      league,
		DisplayName: displayName,
		Slug:        gslug.Make(displayName),
	}
}

// Leagues lists the leagues a season supports, in display order.
func Leagues(seasonNum int) []League {
	if seasonNum >= Current {
		return []League{LeagueLowers, LeagueUppers, LeagueLegends, LeagueWomens}
	}
	return []League{LeagueLowers, LeagueUppers}
}

// Teams returns the fixed roster-to-league table for a season.
func Teams(seasonNum int) []TeamDefinition {
	switch {
	case seasonNum >= Current:
		return currentTeams
	case seasonNum == 2:
		return season2Teams
	default:
		return season1Teams
	}
}

// TeamsByLeague filters a season's table down to one league.
func TeamsByLeague(seasonNum int, league League) []TeamDefinition {
	all := Teams(seasonNum)
	out := make([]TeamDefinition, 0, len(all))
	for _, def := range all {
		if def.League == league {
			out = append(out, def)
		}
	}
	return out
}

// TeamLeague resolves a raw team-name string from the sheets to its league
// for the given season. Sheet names are matched case-insensitively.
func TeamLeague(seasonNum int, name string) (League, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LeagueUnknown, false
	}
	for _, def := range Teams(seasonNum) {
		if strings.EqualFold(def.DisplayName, name) {
			return def.League, true
		}
	}
	return LeagueUnknown, false
}

// MatchLeague classifies a match: both participating teams must resolve to
// the same league under the season's table, otherwise the match is unknown
// and excluded from per-league standings.
func MatchLeague(seasonNum int, homeTeam, awayTeam string) League {
	home, ok := TeamLeague(seasonNum, homeTeam)
	if !ok {
		return LeagueUnknown
	}
	away, ok := TeamLeague(seasonNum, awayTeam)
	if !ok || home != away {
		return LeagueUnknown
	}
	return home
}

// ClassifyRank places a numeric rank into a league using closed intervals.
// Womens is eligibility-based and never produced here. A rank outside all
// intervals, or flagged not-applicable, yields no league.
func ClassifyRank(rank float64, notApplicable bool) League {
	if notApplicable {
		return LeagueUnknown
	}
	switch {
	case rank >= 0.5 && rank <= 6.0:
		return LeagueLowers
	case rank >= 6.5 && rank <= 12.0:
		return LeagueUppers
	case rank >= 12.5 && rank <= 18.0:
		return LeagueLegends
	default:
		return LeagueUnknown
	}
}
