package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/copa-nordeste/copa-api/internal/domain/competition"
	"github.com/copa-nordeste/copa-api/internal/domain/match"
)

type CompetitionService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
}

func NewCompetitionService(competitionRepo competition.Repository, matchRepo match.Repository) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
	}
}

func (s *CompetitionService) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListCompetitions")
	defer span.End()

	competitions, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return competitions, nil
}

func (s *CompetitionService) ListMatchesByCompetition(ctx context.Context, competitionID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListMatchesByCompetition")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list matches by competition: %w", err)
	}

	return matches, nil
}
