package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
)

const teamListCacheKey = "teams:list"

// TeamService serves the public standings data.
type TeamService struct {
	teamRepo team.Repository
	cache    *cache.Store
}

func NewTeamService(teamRepo team.Repository, cacheStore *cache.Store) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		cache:    cacheStore,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	if s.cache == nil {
		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		return teams, nil
	}

	out, err := s.cache.GetOrLoad(ctx, teamListCacheKey, func(ctx context.Context) (any, error) {
		return s.teamRepo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	teams, ok := out.([]team.Team)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", out)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}
