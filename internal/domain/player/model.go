package player

import "fmt"

// Player is a league member identified by discord id. Rank comes from the
// league's placement sheet; RankNA marks players flagged not-applicable.
// TeamsByLeague maps a league slug to the player's current team there.
type Player struct {
	DiscordID      string
	Name           string
	Rank           float64
	RankNA         bool
	WomensEligible bool
	TeamsByLeague  map[string]string
}

func (p Player) Validate() error {
	if p.DiscordID == "" {
		return fmt.Errorf("player discord id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// CurrentTeam returns the player's present team in the given league, if any.
func (p Player) CurrentTeam(leagueSlug string) string {
	if p.TeamsByLeague == nil {
		return ""
	}
	return p.TeamsByLeague[leagueSlug]
}
