package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
	teammock "github.com/copa-nordeste/copa-api/internal/mocks/domain/team"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
)

func TestTeamService_ListTeams_CachesRepositoryResultUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, cache.NewStore(time.Minute))

	standings := []team.Team{
		{ID: "bahia", Name: "EC Bahia", City: "Salvador", State: "BA", Points: 9},
		{ID: "sport", Name: "Sport Recife", City: "Recife", State: "PE", Points: 7},
	}

	teamRepo.
		On("List", mock.Anything).
		Return(standings, nil).
		Once()

	first, err := service.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	second, err := service.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams from cache: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("unexpected team counts: first=%d second=%d", len(first), len(second))
	}
	if second[0].ID != "bahia" {
		t.Fatalf("unexpected leader: got=%s want=bahia", second[0].ID)
	}
}

func TestTeamService_ListTeams_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, nil)

	repoErr := errors.New("connection refused")
	teamRepo.
		On("List", mock.Anything).
		Return(nil, repoErr).
		Once()

	if _, err := service.ListTeams(t.Context()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestTeamService_GetTeam_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, nil)

	teamRepo.
		On("GetByID", mock.Anything, "missing-team").
		Return(team.Team{}, false, nil).
		Once()

	if _, err := service.GetTeam(t.Context(), "missing-team"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
