package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		items[t.ID] = t
	}

	return &TeamRepository{items: items}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	return t, nil
}

func (r *TeamRepository) Update(_ context.Context, teamID string, patch team.Patch) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.City != nil {
		t.City = *patch.City
	}
	if patch.State != nil {
		t.State = *patch.State
	}
	if patch.Logo != nil {
		t.Logo = *patch.Logo
	}
	if patch.GamesPlayed != nil {
		t.GamesPlayed = *patch.GamesPlayed
	}
	if patch.Wins != nil {
		t.Wins = *patch.Wins
	}
	if patch.Draws != nil {
		t.Draws = *patch.Draws
	}
	if patch.Losses != nil {
		t.Losses = *patch.Losses
	}
	if patch.Points != nil {
		t.Points = *patch.Points
	}

	r.items[teamID] = t
	return t, true, nil
}
