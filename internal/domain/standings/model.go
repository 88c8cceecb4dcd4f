package standings

import "sort"

// Row is one team's line in a league table.
type Row struct {
	Team         string
	SeriesWins   int
	SeriesLosses int
	MapWins      int
	MapLosses    int
	MapDiff      int
}

// Sort orders rows by descending series wins, then descending map
// differential, then ascending team name (case-sensitive). The ordering is
// total, so the result is fully determined by the input set.
func Sort(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SeriesWins != rows[j].SeriesWins {
			return rows[i].SeriesWins > rows[j].SeriesWins
		}
		if rows[i].MapDiff != rows[j].MapDiff {
			return rows[i].MapDiff > rows[j].MapDiff
		}
		return rows[i].Team < rows[j].Team
	})
}
