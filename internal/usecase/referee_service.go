package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/referee"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

type RefereeService struct {
	refereeRepo referee.Repository
	ids         id.Generator
	now         func() time.Time
}

func NewRefereeService(refereeRepo referee.Repository, ids id.Generator, now func() time.Time) *RefereeService {
	if now == nil {
		now = time.Now
	}
	return &RefereeService{
		refereeRepo: refereeRepo,
		ids:         ids,
		now:         now,
	}
}

type CreateRefereeInput struct {
	Name  string
	Image string
}

func (s *RefereeService) ListReferees(ctx context.Context) ([]referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.ListReferees")
	defer span.End()

	referees, err := s.refereeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list referees: %w", err)
	}

	return referees, nil
}

func (s *RefereeService) GetReferee(ctx context.Context, refereeID string) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.GetReferee")
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}

	ref, exists, err := s.refereeRepo.GetByID(ctx, refereeID)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("get referee: %w", err)
	}
	if !exists {
		return referee.Referee{}, fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
	}

	return ref, nil
}

func (s *RefereeService) CreateReferee(ctx context.Context, input CreateRefereeInput) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.CreateReferee")
	defer span.End()

	refereeID, err := s.ids.NewID()
	if err != nil {
		return referee.Referee{}, fmt.Errorf("generate referee id: %w", err)
	}

	ref := referee.Referee{
		ID:        refereeID,
		Name:      strings.TrimSpace(input.Name),
		Image:     input.Image,
		CreatedAt: s.now().UTC(),
	}
	if err := ref.Validate(); err != nil {
		return referee.Referee{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.refereeRepo.Create(ctx, ref)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("create referee: %w", err)
	}

	return created, nil
}

func (s *RefereeService) UpdateReferee(ctx context.Context, refereeID string, patch referee.Patch) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.UpdateReferee")
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee name cannot be blank", ErrInvalidInput)
	}

	updated, exists, err := s.refereeRepo.Update(ctx, refereeID, patch)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("update referee: %w", err)
	}
	if !exists {
		return referee.Referee{}, fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
	}

	return updated, nil
}

func (s *RefereeService) DeleteReferee(ctx context.Context, refereeID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.DeleteReferee")
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}

	removed, err := s.refereeRepo.Delete(ctx, refereeID)
	if err != nil {
		return fmt.Errorf("delete referee: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
	}

	return nil
}
