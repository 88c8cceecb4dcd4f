package gamemap

import "fmt"

// Record is one played map inside a series. map_num ascending is the
// ground truth for the order maps were played in.
type Record struct {
	MatchID    string
	MapNum     int
	Mode       string
	MapName    string
	WinnerTeam string
	LoserTeam  string
	Season     int
}

func (r Record) Validate() error {
	if r.MatchID == "" {
		return fmt.Errorf("map record match id is required")
	}
	if r.MapNum <= 0 {
		return fmt.Errorf("map record map num must be greater than zero")
	}
	if r.Mode == "" {
		return fmt.Errorf("map record mode is required")
	}
	return nil
}
