package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/competition"
)

type CompetitionRepository struct {
	mu    sync.RWMutex
	items map[string]competition.Competition
}

func NewCompetitionRepository(competitions []competition.Competition) *CompetitionRepository {
	items := make(map[string]competition.Competition, len(competitions))
	for _, c := range competitions {
		items[c.ID] = c
	}

	return &CompetitionRepository{items: items}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[competitionID]
	if !ok {
		return competition.Competition{}, false, nil
	}

	return c, true, nil
}

func (r *CompetitionRepository) Create(_ context.Context, c competition.Competition) (competition.Competition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.ID] = c
	return c, nil
}
