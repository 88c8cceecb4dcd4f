package series

import "fmt"

// Series is one match night between two teams: an ordered set of maps
// played on a single date, with an aggregate map score.
type Series struct {
	MatchID    string
	MatchDate  string
	HomeTeam   string
	AwayTeam   string
	HomeWins   int
	AwayLosses int
	Season     int
}

func (s Series) Validate() error {
	if s.MatchID == "" {
		return fmt.Errorf("series match id is required")
	}
	if s.MatchDate == "" {
		return fmt.Errorf("series match date is required")
	}
	if s.Season <= 0 {
		return fmt.Errorf("series season must be greater than zero")
	}
	return nil
}
