package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("championships").
		Where(Eq("id", "c1")).
		OrderBy("created_at DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM championships WHERE id = $1 ORDER BY created_at DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("referees").
		Columns("id", "name").
		Values("r1", "name-1").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO referees (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "r1" || args[1] != "name-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("admin_teams").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE admin_teams SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetIfSkipsAbsentFields(t *testing.T) {
	name := "new"
	b := Update("admin_teams").
		SetIf(true, "name", name).
		SetIf(false, "image", nil).
		SetIf(false, "responsible", nil).
		Where(Eq("id", "t1"))

	if !b.HasSets() {
		t.Fatalf("expected at least one set clause")
	}

	query, args, err := b.ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE admin_teams SET name = $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != name || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_AllAbsent(t *testing.T) {
	b := Update("admin_teams").
		SetIf(false, "name", nil).
		Where(Eq("id", "t1"))

	if b.HasSets() {
		t.Fatalf("expected no set clauses")
	}
	if _, _, err := b.ToSQL(); err == nil {
		t.Fatalf("expected error building update with no sets")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("championship_teams").
		Where(Eq("championship_id", "c1"), Eq("team_id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM championship_teams WHERE championship_id = $1 AND team_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "c1" || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("championship_teams").ToSQL(); err == nil {
		t.Fatalf("expected error building delete without conditions")
	}
}
