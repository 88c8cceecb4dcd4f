package season

// Roster tables are static per season. Team names must match the series
// sheet's home/away columns exactly (up to case).

var season1Teams = []TeamDefinition{
	newTeam(LeagueLowers, "Blackout"),
	newTeam(LeagueLowers, "Dropshot Dynasty"),
	newTeam(LeagueLowers, "Hill Crashers"),
	newTeam(LeagueLowers, "Trophy Systems"),
	newTeam(LeagueUppers, "Ninjas Defusing"),
	newTeam(LeagueUppers, "Point Guards"),
	newTeam(LeagueUppers, "Smoke Lords"),
	newTeam(LeagueUppers, "Zone Control"),
}

var season2Teams = []TeamDefinition{
	newTeam(LeagueLowers, "Blackout"),
	newTeam(LeagueLowers, "Hill Crashers"),
	newTeam(LeagueLowers, "Spawn Flippers"),
	newTeam(LeagueLowers, "Trophy Systems"),
	newTeam(LeagueLowers, "Wallbang City"),
	newTeam(LeagueUppers, "Ninjas Defusing"),
	newTeam(LeagueUppers, "Point Guards"),
	newTeam(LeagueUppers, "Rotate Kings"),
	newTeam(LeagueUppers, "Smoke Lords"),
	newTeam(LeagueUppers, "Zone Control"),
}

var currentTeams = []TeamDefinition{
	newTeam(LeagueLowers, "Blackout"),
	newTeam(LeagueLowers, "Spawn Flippers"),
	newTeam(LeagueLowers, "Trophy Systems"),
	newTeam(LeagueLowers, "Wallbang City"),
	newTeam(LeagueUppers, "Hill Crashers"),
	newTeam(LeagueUppers, "Point Guards"),
	newTeam(LeagueUppers, "Rotate Kings"),
	newTeam(LeagueUppers, "Smoke Lords"),
	newTeam(LeagueLegends, "Final Killcam"),
	newTeam(LeagueLegends, "Ninjas Defusing"),
	newTeam(LeagueLegends, "Snakeshot Elite"),
	newTeam(LeagueLegends, "Zone Control"),
	newTeam(LeagueWomens, "Hardpoint Queens"),
	newTeam(LeagueWomens, "Nade Ladies"),
	newTeam(LeagueWomens, "Valkyrie Rush"),
}
