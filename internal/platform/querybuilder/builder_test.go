package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "map_num").
		From("map_records").
		Where(Eq("season", 3), In("mode", []any{"HP", "SND"})).
		OrderBy("match_id", "map_num").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, map_num FROM map_records WHERE season = $1 AND mode IN ($2, $3) ORDER BY match_id, map_num LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 3 || args[1] != "HP" || args[2] != "SND" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("match_id").
		From("match_series").
		Where(In("match_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id FROM match_series WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("discord_id", "name").
		Values("100001", "Fastlane").
		Suffix("ON CONFLICT (discord_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (discord_id, name) VALUES ($1, $2) ON CONFLICT (discord_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "100001" || args[1] != "Fastlane" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("players").
		Columns("discord_id", "name").
		Values("100001").
		ToSQL()
	if err == nil {
		t.Fatal("expected an error for a short value row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		DiscordID string `db:"discord_id"`
		Name      string `db:"name"`
		ignored   int
		Skipped   string `db:"-"`
	}

	query, args, err := InsertModel("players", row{DiscordID: "100001", Name: "Fastlane"}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO players (discord_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "100001" || args[1] != "Fastlane" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestExprCondition(t *testing.T) {
	query, args, err := Select("discord_id").
		From("player_map_stats").
		Where(Eq("season", 2), Expr("kills >= ?", 20)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT discord_id FROM player_map_stats WHERE season = $1 AND kills >= $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 2 || args[1] != 20 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
