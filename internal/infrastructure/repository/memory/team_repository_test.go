package memory

import (
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func TestTeamRepository_StandingsMaintenance(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(nil)
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	created, err := repo.Create(t.Context(), team.Team{
		ID:        "fortaleza",
		Name:      "Fortaleza EC",
		City:      "Fortaleza",
		State:     "CE",
		CreatedAt: base,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Points != 0 || created.GamesPlayed != 0 {
		t.Fatalf("expected fresh counters, got %+v", created)
	}

	if _, err := repo.Create(t.Context(), team.Team{
		ID:        "ceara",
		Name:      "Ceará SC",
		City:      "Fortaleza",
		State:     "CE",
		Points:    1,
		CreatedAt: base.Add(time.Minute),
	}); err != nil {
		t.Fatalf("create second team: %v", err)
	}

	// A home win: played +1, wins +1, points +3.
	updated, found, err := repo.Update(t.Context(), "fortaleza", team.Patch{
		GamesPlayed: intPtr(1),
		Wins:        intPtr(1),
		Points:      intPtr(3),
	})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if !found {
		t.Fatal("expected team to exist")
	}
	if updated.GamesPlayed != 1 || updated.Wins != 1 || updated.Points != 3 {
		t.Fatalf("unexpected counters after win: %+v", updated)
	}
	if updated.Name != "Fortaleza EC" || updated.City != "Fortaleza" {
		t.Fatalf("patch must not clobber untouched fields: %+v", updated)
	}

	standings, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(standings) != 2 || standings[0].ID != "fortaleza" {
		t.Fatalf("expected fortaleza to lead the table, got %+v", standings)
	}
}

func TestTeamRepository_UpdateEmptyPatchKeepsRow(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository([]team.Team{{
		ID:     "nautico",
		Name:   "Náutico",
		City:   "Recife",
		State:  "PE",
		Points: 4,
	}})

	updated, found, err := repo.Update(t.Context(), "nautico", team.Patch{})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if !found {
		t.Fatal("expected team to exist")
	}
	if updated.Points != 4 || updated.Name != "Náutico" {
		t.Fatalf("empty patch must be a no-op, got %+v", updated)
	}
}

func TestTeamRepository_UpdateUnknownTeam(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(nil)

	_, found, err := repo.Update(t.Context(), "missing", team.Patch{Points: intPtr(3)})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if found {
		t.Fatal("expected not-found for unknown team")
	}
}
