package standings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Team: "Wallbang City", SeriesWins: 3, MapDiff: 2},
		{Team: "Blackout", SeriesWins: 3, MapDiff: 2},
		{Team: "Spawn Flippers", SeriesWins: 3, MapDiff: 5},
		{Team: "Trophy Systems", SeriesWins: 5, MapDiff: -1},
	}

	Sort(rows)

	require.Equal(t, "Trophy Systems", rows[0].Team)
	require.Equal(t, "Spawn Flippers", rows[1].Team)
	// Equal series wins and map diff fall back to team name.
	require.Equal(t, "Blackout", rows[2].Team)
	require.Equal(t, "Wallbang City", rows[3].Team)
}
