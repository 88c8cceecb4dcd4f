package assignment

import (
	"sort"

	"github.com/codcl/league-stats/internal/domain/gamemap"
	"github.com/codcl/league-stats/internal/domain/playerlog"
)

// rowsPerMap is the fixed block size the current log format guarantees:
// one row per roster slot, eight slots per map. The source data never
// validates actual roster size against this constant; a short or long
// block silently misaligns assignment for the rest of the match.
const rowsPerMap = 8

// Strategy selects how log rows are placed onto a match's ordered map
// list. It is a pure function of the season and is chosen once per match,
// then passed around as a value.
type Strategy int

const (
	// StrategyFixedChunk covers the current log format: rows arrive in
	// fixed eight-row blocks, one block per map, so position alone
	// determines the map.
	StrategyFixedChunk Strategy = iota
	// StrategyLegacyRun covers seasons whose logs never recorded the map.
	// Rows are matched to maps by walking consecutive same-mode runs.
	StrategyLegacyRun
)

// ForSeason picks the assignment strategy for a season.
func ForSeason(seasonNum int) Strategy {
	if seasonNum >= 2 {
		return StrategyFixedChunk
	}
	return StrategyLegacyRun
}

func (s Strategy) String() string {
	switch s {
	case StrategyFixedChunk:
		return "fixed_chunk"
	case StrategyLegacyRun:
		return "legacy_run"
	default:
		return "unknown"
	}
}

// Result carries every input row, annotated. Unassigned rows are an
// explicit outcome, not an error: they keep counting toward per-mode
// totals downstream but never toward map win/loss.
type Result struct {
	Rows       []playerlog.AssignedRow
	Unresolved int
}

// Assign resolves each row of one match to a map_num from that match's
// map list. Output depends only on source_row order and map_num order, so
// identical inputs always produce identical results.
func Assign(strategy Strategy, maps []gamemap.Record, rows []playerlog.Row) Result {
	sortedMaps := make([]gamemap.Record, len(maps))
	copy(sortedMaps, maps)
	sort.Slice(sortedMaps, func(i, j int) bool { return sortedMaps[i].MapNum < sortedMaps[j].MapNum })

	sortedRows := make([]playerlog.Row, len(rows))
	copy(sortedRows, rows)
	sort.SliceStable(sortedRows, func(i, j int) bool { return sortedRows[i].SourceRow < sortedRows[j].SourceRow })

	var mapNumByIndex []int
	switch strategy {
	case StrategyLegacyRun:
		mapNumByIndex = assignLegacyRun(sortedMaps, sortedRows)
	default:
		mapNumByIndex = assignFixedChunk(sortedMaps, sortedRows)
	}

	out := Result{Rows: make([]playerlog.AssignedRow, 0, len(sortedRows))}
	for i, row := range sortedRows {
		assigned := playerlog.AssignedRow{Row: row}
		if mapNumByIndex[i] > 0 {
			assigned.MapNum = mapNumByIndex[i]
			assigned.Resolved = true
		} else {
			out.Unresolved++
		}
		out.Rows = append(out.Rows, assigned)
	}
	return out
}

// assignFixedChunk places row i on map floor(i/8)+1 when that map exists;
// rows past the final block stay unassigned.
func assignFixedChunk(maps []gamemap.Record, rows []playerlog.Row) []int {
	known := make(map[int]bool, len(maps))
	for _, m := range maps {
		known[m.MapNum] = true
	}

	out := make([]int, len(rows))
	for i := range rows {
		mapNum := i/rowsPerMap + 1
		if known[mapNum] {
			out[i] = mapNum
		}
	}
	return out
}

// assignLegacyRun walks maps in map_num order, consuming consecutive
// same-mode row runs. When several upcoming maps share a mode, enough of
// the run is reserved for each of them instead of letting the first map
// swallow the whole run.
func assignLegacyRun(maps []gamemap.Record, rows []playerlog.Row) []int {
	out := make([]int, len(rows))

	rowIdx := 0
	for mapIdx := 0; mapIdx < len(maps) && rowIdx < len(rows); mapIdx++ {
		mode := maps[mapIdx].Mode
		if rows[rowIdx].Mode != mode {
			// This map has no matching rows at the cursor; move on
			// without consuming anything.
			continue
		}

		runLength := 0
		for rowIdx+runLength < len(rows) && rows[rowIdx+runLength].Mode == mode {
			runLength++
		}

		sameModeMapsAhead := 0
		for mapIdx+sameModeMapsAhead < len(maps) && maps[mapIdx+sameModeMapsAhead].Mode == mode {
			sameModeMapsAhead++
		}

		take := runLength - (sameModeMapsAhead - 1)
		if take > rowsPerMap {
			take = rowsPerMap
		}
		if take < 0 {
			take = 0
		}

		for i := 0; i < take; i++ {
			out[rowIdx+i] = maps[mapIdx].MapNum
		}
		rowIdx += take
	}

	return out
}
