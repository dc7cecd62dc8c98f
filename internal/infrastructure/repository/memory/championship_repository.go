package memory

import (
	"context"
	"sort"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
)

type ChampionshipRepository struct {
	store *AdminStore
}

func NewChampionshipRepository(store *AdminStore) *ChampionshipRepository {
	return &ChampionshipRepository{store: store}
}

func (r *ChampionshipRepository) List(_ context.Context) ([]championship.Championship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]championship.Championship, 0, len(r.store.championships))
	for _, c := range r.store.championships {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *ChampionshipRepository) GetByID(_ context.Context, championshipID string) (championship.Championship, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.championships[championshipID]
	if !ok {
		return championship.Championship{}, false, nil
	}

	return c, true, nil
}

func (r *ChampionshipRepository) Create(_ context.Context, c championship.Championship) (championship.Championship, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.championships[c.ID] = c
	return c, nil
}

func (r *ChampionshipRepository) Update(_ context.Context, championshipID string, patch championship.Patch) (championship.Championship, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.championships[championshipID]
	if !ok {
		return championship.Championship{}, false, nil
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	if patch.StartDate != nil {
		c.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		c.EndDate = *patch.EndDate
	}

	r.store.championships[championshipID] = c
	return c, true, nil
}

func (r *ChampionshipRepository) Delete(_ context.Context, championshipID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.championships[championshipID]; !ok {
		return false, nil
	}
	delete(r.store.championships, championshipID)
	for id, entry := range r.store.entries {
		if entry.ChampionshipID == championshipID {
			delete(r.store.entries, id)
		}
	}

	return true, nil
}

func (r *ChampionshipRepository) ListTeams(_ context.Context, championshipID string) ([]adminteam.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]adminteam.Team, 0)
	for _, entry := range r.store.entries {
		if entry.ChampionshipID != championshipID {
			continue
		}
		if t, ok := r.store.teams[entry.TeamID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *ChampionshipRepository) AddTeam(_ context.Context, entry championship.Entry) (championship.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.entries {
		if existing.ChampionshipID == entry.ChampionshipID && existing.TeamID == entry.TeamID {
			return championship.Entry{}, championship.ErrDuplicateEntry
		}
	}
	r.store.entries[entry.ID] = entry

	return entry, nil
}

func (r *ChampionshipRepository) RemoveTeam(_ context.Context, championshipID, teamID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, entry := range r.store.entries {
		if entry.ChampionshipID == championshipID && entry.TeamID == teamID {
			delete(r.store.entries, id)
			return true, nil
		}
	}

	return false, nil
}
