package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

type AthleteService struct {
	athleteRepo   athlete.Repository
	adminTeamRepo adminteam.Repository
	ids           id.Generator
	now           func() time.Time
}

func NewAthleteService(athleteRepo athlete.Repository, adminTeamRepo adminteam.Repository, ids id.Generator, now func() time.Time) *AthleteService {
	if now == nil {
		now = time.Now
	}
	return &AthleteService{
		athleteRepo:   athleteRepo,
		adminTeamRepo: adminTeamRepo,
		ids:           ids,
		now:           now,
	}
}

type CreateAthleteInput struct {
	Name     string
	Document string
	Image    string
	TeamID   string
}

// ListAthletes returns every athlete, or only one team's when teamID is
// set.
func (s *AthleteService) ListAthletes(ctx context.Context, teamID string) ([]athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.ListAthletes")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		athletes, err := s.athleteRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list athletes by team: %w", err)
		}
		return athletes, nil
	}

	athletes, err := s.athleteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}

	return athletes, nil
}

func (s *AthleteService) GetAthlete(ctx context.Context, athleteID string) (athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.GetAthlete")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	a, exists, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("get athlete: %w", err)
	}
	if !exists {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete=%s", ErrNotFound, athleteID)
	}

	return a, nil
}

func (s *AthleteService) CreateAthlete(ctx context.Context, input CreateAthleteInput) (athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.CreateAthlete")
	defer span.End()

	teamID := strings.TrimSpace(input.TeamID)
	if teamID != "" {
		if err := s.requireTeam(ctx, teamID); err != nil {
			return athlete.Athlete{}, err
		}
	}

	athleteID, err := s.ids.NewID()
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("generate athlete id: %w", err)
	}

	now := s.now().UTC()
	a := athlete.Athlete{
		ID:        athleteID,
		Name:      strings.TrimSpace(input.Name),
		Document:  strings.TrimSpace(input.Document),
		Image:     input.Image,
		TeamID:    teamID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return athlete.Athlete{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.athleteRepo.Create(ctx, a)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("create athlete: %w", err)
	}

	return created, nil
}

func (s *AthleteService) UpdateAthlete(ctx context.Context, athleteID string, patch athlete.Patch) (athlete.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.UpdateAthlete")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete name cannot be blank", ErrInvalidInput)
	}
	if patch.TeamID != nil && strings.TrimSpace(*patch.TeamID) != "" {
		if err := s.requireTeam(ctx, strings.TrimSpace(*patch.TeamID)); err != nil {
			return athlete.Athlete{}, err
		}
	}

	updated, exists, err := s.athleteRepo.Update(ctx, athleteID, patch)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("update athlete: %w", err)
	}
	if !exists {
		return athlete.Athlete{}, fmt.Errorf("%w: athlete=%s", ErrNotFound, athleteID)
	}

	return updated, nil
}

func (s *AthleteService) DeleteAthlete(ctx context.Context, athleteID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AthleteService.DeleteAthlete")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	removed, err := s.athleteRepo.Delete(ctx, athleteID)
	if err != nil {
		return fmt.Errorf("delete athlete: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: athlete=%s", ErrNotFound, athleteID)
	}

	return nil
}

func (s *AthleteService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.adminTeamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get admin team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
