package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

// ChampionshipService owns championships and their team roster.
type ChampionshipService struct {
	championshipRepo championship.Repository
	adminTeamRepo    adminteam.Repository
	ids              id.Generator
	now              func() time.Time
}

func NewChampionshipService(
	championshipRepo championship.Repository,
	adminTeamRepo adminteam.Repository,
	ids id.Generator,
	now func() time.Time,
) *ChampionshipService {
	if now == nil {
		now = time.Now
	}
	return &ChampionshipService{
		championshipRepo: championshipRepo,
		adminTeamRepo:    adminTeamRepo,
		ids:              ids,
		now:              now,
	}
}

type CreateChampionshipInput struct {
	Name      string
	Image     string
	StartDate string
	EndDate   string
}

func (s *ChampionshipService) ListChampionships(ctx context.Context) ([]championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.ListChampionships")
	defer span.End()

	championships, err := s.championshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}

	return championships, nil
}

func (s *ChampionshipService) GetChampionship(ctx context.Context, championshipID string) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.GetChampionship")
	defer span.End()

	return s.getChampionship(ctx, championshipID)
}

func (s *ChampionshipService) CreateChampionship(ctx context.Context, input CreateChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.CreateChampionship")
	defer span.End()

	championshipID, err := s.ids.NewID()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("generate championship id: %w", err)
	}

	c := championship.Championship{
		ID:        championshipID,
		Name:      strings.TrimSpace(input.Name),
		Image:     input.Image,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: s.now().UTC(),
	}
	if c.StartDate != "" && c.EndDate != "" && c.StartDate > c.EndDate {
		return championship.Championship{}, NewValidationError(FieldError{Field: "startDate", Message: "must not be after endDate"})
	}
	if err := c.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.championshipRepo.Create(ctx, c)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}

	return created, nil
}

// UpdateChampionship applies a partial patch. The date-order rule is
// checked only when the patch carries both dates.
func (s *ChampionshipService) UpdateChampionship(ctx context.Context, championshipID string, patch championship.Patch) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.UpdateChampionship")
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship name cannot be blank", ErrInvalidInput)
	}
	if patch.StartDate != nil && patch.EndDate != nil && *patch.StartDate > *patch.EndDate {
		return championship.Championship{}, NewValidationError(FieldError{Field: "startDate", Message: "must not be after endDate"})
	}

	updated, exists, err := s.championshipRepo.Update(ctx, championshipID, patch)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("update championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}

	return updated, nil
}

func (s *ChampionshipService) DeleteChampionship(ctx context.Context, championshipID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.DeleteChampionship")
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	removed, err := s.championshipRepo.Delete(ctx, championshipID)
	if err != nil {
		return fmt.Errorf("delete championship: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}

	return nil
}

func (s *ChampionshipService) ListChampionshipTeams(ctx context.Context, championshipID string) ([]adminteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.ListChampionshipTeams")
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return nil, err
	}

	teams, err := s.championshipRepo.ListTeams(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list championship teams: %w", err)
	}

	return teams, nil
}

// AddTeam enrolls an admin team; enrolling the same team twice answers
// the duplicate-entry domain error.
func (s *ChampionshipService) AddTeam(ctx context.Context, championshipID, teamID string) (championship.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.AddTeam")
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return championship.Entry{}, err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return championship.Entry{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	_, exists, err := s.adminTeamRepo.GetByID(ctx, teamID)
	if err != nil {
		return championship.Entry{}, fmt.Errorf("get admin team: %w", err)
	}
	if !exists {
		return championship.Entry{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	entryID, err := s.ids.NewID()
	if err != nil {
		return championship.Entry{}, fmt.Errorf("generate entry id: %w", err)
	}

	entry, err := s.championshipRepo.AddTeam(ctx, championship.Entry{
		ID:             entryID,
		ChampionshipID: championshipID,
		TeamID:         teamID,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, championship.ErrDuplicateEntry) {
			return championship.Entry{}, err
		}
		return championship.Entry{}, fmt.Errorf("add championship team: %w", err)
	}

	return entry, nil
}

func (s *ChampionshipService) RemoveTeam(ctx context.Context, championshipID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.RemoveTeam")
	defer span.End()

	if _, err := s.getChampionship(ctx, championshipID); err != nil {
		return err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	removed, err := s.championshipRepo.RemoveTeam(ctx, championshipID, teamID)
	if err != nil {
		return fmt.Errorf("remove championship team: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: team=%s not enrolled", ErrNotFound, teamID)
	}

	return nil
}

func (s *ChampionshipService) getChampionship(ctx context.Context, championshipID string) (championship.Championship, error) {
	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	c, exists, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}

	return c, nil
}
