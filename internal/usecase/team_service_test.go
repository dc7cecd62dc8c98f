package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
)

func TestTeamService_List_StandingsOrder(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), cache.NewStore(time.Minute))

	teams, err := svc.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 5 {
		t.Fatalf("expected 5 seeded teams, got %d", len(teams))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].Points < teams[i].Points {
			t.Fatalf("standings out of order at %d: %d points before %d", i, teams[i-1].Points, teams[i].Points)
		}
	}
	if teams[0].ID != "bahia" {
		t.Fatalf("expected leader bahia, got %s", teams[0].ID)
	}
}

func TestTeamService_List_WorksWithoutCache(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), nil)

	teams, err := svc.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 5 {
		t.Fatalf("expected 5 teams, got %d", len(teams))
	}
}

func TestTeamService_Get_UnknownTeam(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()), nil)

	_, err := svc.GetTeam(t.Context(), "flamengo")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompetitionService_MatchesByCompetition(t *testing.T) {
	svc := NewCompetitionService(
		memory.NewCompetitionRepository(memory.SeedCompetitions()),
		memory.NewMatchRepository(memory.SeedMatches()),
	)

	matches, err := svc.ListMatchesByCompetition(t.Context(), memory.CompetitionIDCopa2026)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	_, err = svc.ListMatchesByCompetition(t.Context(), "serie-a")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown competition, got %v", err)
	}
}

func TestMatchService_List_KeepsScoresNullable(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()))

	matches, err := svc.ListMatches(t.Context())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}

	var finished, scheduled int
	for _, m := range matches {
		if m.HomeScore != nil && m.AwayScore != nil {
			finished++
		} else {
			scheduled++
		}
	}
	if finished == 0 || scheduled == 0 {
		t.Fatalf("seed should mix finished and scheduled matches: finished=%d scheduled=%d", finished, scheduled)
	}
}
