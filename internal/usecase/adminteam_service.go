package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

type AdminTeamService struct {
	adminTeamRepo adminteam.Repository
	ids           id.Generator
	now           func() time.Time
}

func NewAdminTeamService(adminTeamRepo adminteam.Repository, ids id.Generator, now func() time.Time) *AdminTeamService {
	if now == nil {
		now = time.Now
	}
	return &AdminTeamService{
		adminTeamRepo: adminTeamRepo,
		ids:           ids,
		now:           now,
	}
}

type CreateAdminTeamInput struct {
	Name        string
	Image       string
	Responsible string
	Phone       string
}

func (s *AdminTeamService) ListTeams(ctx context.Context) ([]adminteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminTeamService.ListTeams")
	defer span.End()

	teams, err := s.adminTeamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admin teams: %w", err)
	}

	return teams, nil
}

func (s *AdminTeamService) GetTeam(ctx context.Context, teamID string) (adminteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminTeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return adminteam.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.adminTeamRepo.GetByID(ctx, teamID)
	if err != nil {
		return adminteam.Team{}, fmt.Errorf("get admin team: %w", err)
	}
	if !exists {
		return adminteam.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

func (s *AdminTeamService) CreateTeam(ctx context.Context, input CreateAdminTeamInput) (adminteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminTeamService.CreateTeam")
	defer span.End()

	teamID, err := s.ids.NewID()
	if err != nil {
		return adminteam.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	t := adminteam.Team{
		ID:          teamID,
		Name:        strings.TrimSpace(input.Name),
		Image:       input.Image,
		Responsible: strings.TrimSpace(input.Responsible),
		Phone:       strings.TrimSpace(input.Phone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return adminteam.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.adminTeamRepo.Create(ctx, t)
	if err != nil {
		return adminteam.Team{}, fmt.Errorf("create admin team: %w", err)
	}

	return created, nil
}

func (s *AdminTeamService) UpdateTeam(ctx context.Context, teamID string, patch adminteam.Patch) (adminteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminTeamService.UpdateTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return adminteam.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return adminteam.Team{}, fmt.Errorf("%w: team name cannot be blank", ErrInvalidInput)
	}

	updated, exists, err := s.adminTeamRepo.Update(ctx, teamID, patch)
	if err != nil {
		return adminteam.Team{}, fmt.Errorf("update admin team: %w", err)
	}
	if !exists {
		return adminteam.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return updated, nil
}

func (s *AdminTeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminTeamService.DeleteTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	removed, err := s.adminTeamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete admin team: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
