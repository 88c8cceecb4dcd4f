package season

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyRank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		rank          float64
		notApplicable bool
		want          League
	}{
		{name: "lowest lowers bound", rank: 0.5, want: LeagueLowers},
		{name: "upper lowers bound", rank: 6.0, want: LeagueLowers},
		{name: "between intervals", rank: 6.3, want: LeagueUnknown},
		{name: "lowest uppers bound", rank: 6.5, want: LeagueUppers},
		{name: "upper uppers bound", rank: 12.0, want: LeagueUppers},
		{name: "legends", rank: 14.0, want: LeagueLegends},
		{name: "above legends", rank: 19.0, want: LeagueUnknown},
		{name: "below lowers", rank: 0.0, want: LeagueUnknown},
		{name: "not applicable", rank: 5.0, notApplicable: true, want: LeagueUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ClassifyRank(tc.rank, tc.notApplicable))
		})
	}
}

func TestLeagues(t *testing.T) {
	t.Parallel()

	require.Equal(t, []League{LeagueLowers, LeagueUppers}, Leagues(1))
	require.Equal(t, []League{LeagueLowers, LeagueUppers}, Leagues(2))
	require.Equal(t, []League{LeagueLowers, LeagueUppers, LeagueLegends, LeagueWomens}, Leagues(Current))
}

func TestTeamLeague(t *testing.T) {
	t.Parallel()

	league, ok := TeamLeague(Current, "Blackout")
	require.True(t, ok)
	require.Equal(t, LeagueLowers, league)

	// Sheet values are matched case-insensitively.
	league, ok = TeamLeague(Current, "  zone control ")
	require.True(t, ok)
	require.Equal(t, LeagueLegends, league)

	_, ok = TeamLeague(Current, "Not A Team")
	require.False(t, ok)
}

func TestMatchLeague(t *testing.T) {
	t.Parallel()

	require.Equal(t, LeagueLowers, MatchLeague(Current, "Blackout", "Spawn Flippers"))

	// Cross-league matches are unknown and excluded from standings.
	require.Equal(t, LeagueUnknown, MatchLeague(Current, "Blackout", "Zone Control"))
	require.Equal(t, LeagueUnknown, MatchLeague(Current, "Blackout", "Not A Team"))
}

func TestTeamsHaveSlugs(t *testing.T) {
	t.Parallel()

	for _, def := range Teams(Current) {
		require.NotEmpty(t, def.Slug, "team %q", def.DisplayName)
	}
}
