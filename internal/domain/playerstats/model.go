package playerstats

import (
	"fmt"
	"math"
)

// Ratio is a kill/death ratio computed from raw totals, never from
// averaging per-map or per-mode ratios. Zero deaths with positive kills is
// infinite; zero kills and zero deaths is "no data", which is distinct
// from a numeric 0.00.
type Ratio struct {
	Kills  int
	Deaths int
}

func (r Ratio) NoData() bool {
	return r.Kills == 0 && r.Deaths == 0
}

func (r Ratio) Infinite() bool {
	return r.Deaths == 0 && r.Kills > 0
}

// Value returns the numeric ratio. Infinite is math.Inf(1); the second
// return is false when there is no data.
func (r Ratio) Value() (float64, bool) {
	if r.NoData() {
		return 0, false
	}
	if r.Infinite() {
		return math.Inf(1), true
	}
	return float64(r.Kills) / float64(r.Deaths), true
}

func (r Ratio) String() string {
	if r.NoData() {
		return "no data"
	}
	if r.Infinite() {
		return "infinite"
	}
	return fmt.Sprintf("%.2f", float64(r.Kills)/float64(r.Deaths))
}

// ModeBreakdown accumulates one mode's share of a player's rows.
type ModeBreakdown struct {
	Mode      string
	Kills     int
	Deaths    int
	Assists   int
	MapWins   int
	MapLosses int
	HillTime  int
	Plants    int
	Defuses   int
	Ticks     int
}

func (b ModeBreakdown) KD() Ratio {
	return Ratio{Kills: b.Kills, Deaths: b.Deaths}
}

// Aggregate is a player's derived career line. It is recomputed from
// assigned log rows and series records on read; nothing here is a source
// of truth.
type Aggregate struct {
	DiscordID    string
	Name         string
	Kills        int
	Deaths       int
	Assists      int
	SeriesWins   int
	SeriesLosses int
	MapWins      int
	MapLosses    int
	Unresolved   int
	Modes        map[string]ModeBreakdown
}

func (a Aggregate) KD() Ratio {
	return Ratio{Kills: a.Kills, Deaths: a.Deaths}
}

// MapLine is one resolved map inside a match-history entry, with the
// player's stat line and display tag for that map.
type MapLine struct {
	MapNum  int
	Mode    string
	MapName string
	Kills   int
	Deaths  int
	Assists int
	Won     bool
	Tag     string
}

// MatchSummary is one match-history entry: the series header plus the
// player's per-map lines. UnresolvedRows counts log rows the resolver
// could not place on a map.
type MatchSummary struct {
	MatchID        string
	MatchDate      string
	HomeTeam       string
	AwayTeam       string
	HomeWins       int
	AwayLosses     int
	Season         int
	Team           string
	Maps           []MapLine
	UnresolvedRows int
}
