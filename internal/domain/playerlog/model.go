package playerlog

import (
	"fmt"
	"strings"
)

// Game modes as they appear in the log sheets.
const (
	ModeHardpoint        = "Hardpoint"
	ModeSearchAndDestroy = "Search and Destroy"
	ModeControl          = "Control"
)

// Display tags derived per row, independent of map assignment.
const (
	TagESub     = "ESub"
	TagReleased = "Released"
)

// Row is one player's stat line for one mode within a match, exactly as
// recorded in the log sheet. SourceRow is the row's position in the
// ingestion batch; within a match it is the only pre-assignment signal of
// map order in legacy seasons.
type Row struct {
	MatchID   string
	DiscordID string
	Team      string
	Mode      string
	Kills     int
	Deaths    int
	Assists   int
	HillTime  int
	Plants    int
	Defuses   int
	Ticks     int
	WriteIn   string
	SourceRow int
	Season    int
}

func (r Row) Validate() error {
	if r.MatchID == "" {
		return fmt.Errorf("player log match id is required")
	}
	if r.DiscordID == "" {
		return fmt.Errorf("player log discord id is required")
	}
	if r.Mode == "" {
		return fmt.Errorf("player log mode is required")
	}
	return nil
}

// AssignedRow is a Row after map assignment. Resolved=false means the
// resolver could not place the row on a map; the row still counts toward
// per-mode kill/death totals but never toward map win/loss.
type AssignedRow struct {
	Row
	MapNum   int
	Resolved bool
	Tag      string
}

// DisplayTag derives the row's display tag. currentTeam is the player's
// present team for the league the match belongs to; it is only consulted
// for season >= 2 rosters.
func DisplayTag(row Row, currentTeam string) string {
	if strings.TrimSpace(row.WriteIn) == TagESub {
		return TagESub
	}
	if row.Season >= 2 && currentTeam != "" && !strings.EqualFold(strings.TrimSpace(row.Team), strings.TrimSpace(currentTeam)) {
		return TagReleased
	}
	return ""
}
