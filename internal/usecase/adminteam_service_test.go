package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

type adminFixture struct {
	teams    *AdminTeamService
	athletes *AthleteService
	clock    *fakeClock
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newAdminFixture() adminFixture {
	store := memory.NewAdminStore()
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	teamRepo := memory.NewAdminTeamRepository(store, clock.Now)
	athleteRepo := memory.NewAthleteRepository(store, clock.Now)

	return adminFixture{
		teams:    NewAdminTeamService(teamRepo, id.NewUUIDGenerator(), clock.Now),
		athletes: NewAthleteService(athleteRepo, teamRepo, id.NewUUIDGenerator(), clock.Now),
		clock:    clock,
	}
}

func TestAdminTeamService_CreateAndGet(t *testing.T) {
	fx := newAdminFixture()

	created, err := fx.teams.CreateTeam(t.Context(), CreateAdminTeamInput{
		Name:        "Fortaleza EC",
		Responsible: "Ana Lima",
		Phone:       "+55 85 99999-0001",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	got, err := fx.teams.GetTeam(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Name != "Fortaleza EC" || got.Responsible != "Ana Lima" {
		t.Fatalf("unexpected team: %+v", got)
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("fresh team should have UpdatedAt == CreatedAt: %+v", got)
	}
}

func TestAdminTeamService_Update_TouchesOnlyPatchedFields(t *testing.T) {
	fx := newAdminFixture()

	created, err := fx.teams.CreateTeam(t.Context(), CreateAdminTeamInput{
		Name:        "Sport Recife",
		Responsible: "Carlos Souza",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	fx.clock.Advance(2 * time.Hour)
	phone := "+55 81 98888-0002"
	updated, err := fx.teams.UpdateTeam(t.Context(), created.ID, adminteam.Patch{Phone: &phone})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}

	if updated.Phone != phone {
		t.Fatalf("phone not applied: %s", updated.Phone)
	}
	if updated.Name != created.Name || updated.Responsible != created.Responsible {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("UpdatedAt should advance on patch: %v", updated.UpdatedAt)
	}
}

func TestAdminTeamService_Update_EmptyPatchIsNoOp(t *testing.T) {
	fx := newAdminFixture()

	created, err := fx.teams.CreateTeam(t.Context(), CreateAdminTeamInput{Name: "CSA"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	fx.clock.Advance(time.Hour)
	updated, err := fx.teams.UpdateTeam(t.Context(), created.ID, adminteam.Patch{})
	if err != nil {
		t.Fatalf("empty patch update: %v", err)
	}
	if !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("empty patch should not touch UpdatedAt: %v", updated.UpdatedAt)
	}
}

func TestAdminTeamService_Update_UnknownTeam(t *testing.T) {
	fx := newAdminFixture()

	name := "Ghost FC"
	_, err := fx.teams.UpdateTeam(t.Context(), "missing", adminteam.Patch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminTeamService_Delete_DetachesAthletes(t *testing.T) {
	fx := newAdminFixture()

	team, err := fx.teams.CreateTeam(t.Context(), CreateAdminTeamInput{Name: "Bahia"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	ath, err := fx.athletes.CreateAthlete(t.Context(), CreateAthleteInput{
		Name:   "Everaldo",
		TeamID: team.ID,
	})
	if err != nil {
		t.Fatalf("create athlete: %v", err)
	}

	if err := fx.teams.DeleteTeam(t.Context(), team.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	got, err := fx.athletes.GetAthlete(t.Context(), ath.ID)
	if err != nil {
		t.Fatalf("athlete should survive team deletion: %v", err)
	}
	if got.TeamID != "" {
		t.Fatalf("athlete should be detached, still linked to %s", got.TeamID)
	}

	err = fx.teams.DeleteTeam(t.Context(), team.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
