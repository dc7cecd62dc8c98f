package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/referee"
)

type RefereeRepository struct {
	mu    sync.RWMutex
	items map[string]referee.Referee
}

func NewRefereeRepository() *RefereeRepository {
	return &RefereeRepository{items: make(map[string]referee.Referee)}
}

func (r *RefereeRepository) List(_ context.Context) ([]referee.Referee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]referee.Referee, 0, len(r.items))
	for _, ref := range r.items {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *RefereeRepository) GetByID(_ context.Context, refereeID string) (referee.Referee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.items[refereeID]
	if !ok {
		return referee.Referee{}, false, nil
	}

	return ref, true, nil
}

func (r *RefereeRepository) Create(_ context.Context, ref referee.Referee) (referee.Referee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[ref.ID] = ref
	return ref, nil
}

func (r *RefereeRepository) Update(_ context.Context, refereeID string, patch referee.Patch) (referee.Referee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.items[refereeID]
	if !ok {
		return referee.Referee{}, false, nil
	}

	if patch.Name != nil {
		ref.Name = *patch.Name
	}
	if patch.Image != nil {
		ref.Image = *patch.Image
	}

	r.items[refereeID] = ref
	return ref, true, nil
}

func (r *RefereeRepository) Delete(_ context.Context, refereeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[refereeID]; !ok {
		return false, nil
	}
	delete(r.items, refereeID)

	return true, nil
}
