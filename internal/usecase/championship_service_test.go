package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

func newChampionshipFixture() (*ChampionshipService, *AdminTeamService) {
	store := memory.NewAdminStore()
	now := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	championships := NewChampionshipService(
		memory.NewChampionshipRepository(store),
		memory.NewAdminTeamRepository(store, now),
		id.NewUUIDGenerator(),
		now,
	)
	adminTeams := NewAdminTeamService(memory.NewAdminTeamRepository(store, now), id.NewUUIDGenerator(), now)

	return championships, adminTeams
}

func TestChampionshipService_CreateAndGet(t *testing.T) {
	svc, _ := newChampionshipFixture()

	created, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated championship id")
	}

	got, err := svc.GetChampionship(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get championship: %v", err)
	}
	if got.Name != "Copa Nordeste 2026" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
}

func TestChampionshipService_Create_RejectsInvertedDates(t *testing.T) {
	svc, _ := newChampionshipFixture()

	_, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Backwards Cup",
		StartDate: "2026-06-20",
		EndDate:   "2026-03-15",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChampionshipService_Update_EmptyPatchKeepsRecord(t *testing.T) {
	svc, _ := newChampionshipFixture()

	created, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}

	updated, err := svc.UpdateChampionship(t.Context(), created.ID, championship.Patch{})
	if err != nil {
		t.Fatalf("empty patch update: %v", err)
	}
	if updated != created {
		t.Fatalf("empty patch changed the record: %+v != %+v", updated, created)
	}
}

func TestChampionshipService_Update_SingleFieldLeavesOthers(t *testing.T) {
	svc, _ := newChampionshipFixture()

	created, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}

	name := "Copa Nordeste 2026 (Regional)"
	updated, err := svc.UpdateChampionship(t.Context(), created.ID, championship.Patch{Name: &name})
	if err != nil {
		t.Fatalf("update championship: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("patched name not applied: %s", updated.Name)
	}
	if updated.StartDate != created.StartDate || updated.EndDate != created.EndDate {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
}

func TestChampionshipService_Update_RejectsInvertedPatchDates(t *testing.T) {
	svc, _ := newChampionshipFixture()

	created, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}

	start, end := "2026-07-01", "2026-06-01"
	_, err = svc.UpdateChampionship(t.Context(), created.ID, championship.Patch{StartDate: &start, EndDate: &end})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChampionshipService_Delete_SecondDeleteIsNotFound(t *testing.T) {
	svc, _ := newChampionshipFixture()

	created, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}

	if err := svc.DeleteChampionship(t.Context(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err = svc.DeleteChampionship(t.Context(), created.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestChampionshipService_Roster_AddListRemove(t *testing.T) {
	svc, adminTeams := newChampionshipFixture()

	c, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}
	team, err := adminTeams.CreateTeam(t.Context(), CreateAdminTeamInput{Name: "Fortaleza EC"})
	if err != nil {
		t.Fatalf("create admin team: %v", err)
	}

	entry, err := svc.AddTeam(t.Context(), c.ID, team.ID)
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if entry.ChampionshipID != c.ID || entry.TeamID != team.ID {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	roster, err := svc.ListChampionshipTeams(t.Context(), c.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != team.ID {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	if err := svc.RemoveTeam(t.Context(), c.ID, team.ID); err != nil {
		t.Fatalf("remove team: %v", err)
	}
	err = svc.RemoveTeam(t.Context(), c.ID, team.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second removal, got %v", err)
	}
}

func TestChampionshipService_Roster_RejectsDuplicateEnrollment(t *testing.T) {
	svc, adminTeams := newChampionshipFixture()

	c, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}
	team, err := adminTeams.CreateTeam(t.Context(), CreateAdminTeamInput{Name: "Sport Recife"})
	if err != nil {
		t.Fatalf("create admin team: %v", err)
	}

	if _, err := svc.AddTeam(t.Context(), c.ID, team.ID); err != nil {
		t.Fatalf("first enrollment: %v", err)
	}
	_, err = svc.AddTeam(t.Context(), c.ID, team.ID)
	if !errors.Is(err, championship.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestChampionshipService_Roster_UnknownTeam(t *testing.T) {
	svc, _ := newChampionshipFixture()

	c, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}

	_, err = svc.AddTeam(t.Context(), c.ID, "no-such-team")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChampionshipService_Delete_DropsRoster(t *testing.T) {
	svc, adminTeams := newChampionshipFixture()

	c, err := svc.CreateChampionship(t.Context(), CreateChampionshipInput{
		Name:      "Copa Nordeste 2026",
		StartDate: "2026-03-15",
		EndDate:   "2026-06-20",
	})
	if err != nil {
		t.Fatalf("create championship: %v", err)
	}
	team, err := adminTeams.CreateTeam(t.Context(), CreateAdminTeamInput{Name: "CSA"})
	if err != nil {
		t.Fatalf("create admin team: %v", err)
	}
	if _, err := svc.AddTeam(t.Context(), c.ID, team.ID); err != nil {
		t.Fatalf("add team: %v", err)
	}

	if err := svc.DeleteChampionship(t.Context(), c.ID); err != nil {
		t.Fatalf("delete championship: %v", err)
	}

	// The team itself survives; only the enrollment goes.
	if _, err := adminTeams.GetTeam(t.Context(), team.ID); err != nil {
		t.Fatalf("team should survive championship deletion: %v", err)
	}
	_, err = svc.ListChampionshipTeams(t.Context(), c.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted championship, got %v", err)
	}
}
