package memory

import (
	"context"
	"sort"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
)

type AthleteRepository struct {
	store *AdminStore
	now   func() time.Time
}

func NewAthleteRepository(store *AdminStore, now func() time.Time) *AthleteRepository {
	if now == nil {
		now = time.Now
	}
	return &AthleteRepository{store: store, now: now}
}

func (r *AthleteRepository) List(_ context.Context) ([]athlete.Athlete, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(athlete.Athlete) bool { return true }), nil
}

func (r *AthleteRepository) ListByTeam(_ context.Context, teamID string) ([]athlete.Athlete, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(a athlete.Athlete) bool { return a.TeamID == teamID }), nil
}

func (r *AthleteRepository) GetByID(_ context.Context, athleteID string) (athlete.Athlete, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.athletes[athleteID]
	if !ok {
		return athlete.Athlete{}, false, nil
	}

	return a, true, nil
}

func (r *AthleteRepository) Create(_ context.Context, a athlete.Athlete) (athlete.Athlete, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.athletes[a.ID] = a
	return a, nil
}

func (r *AthleteRepository) Update(_ context.Context, athleteID string, patch athlete.Patch) (athlete.Athlete, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.athletes[athleteID]
	if !ok {
		return athlete.Athlete{}, false, nil
	}

	changed := false
	if patch.Name != nil {
		a.Name = *patch.Name
		changed = true
	}
	if patch.Document != nil {
		a.Document = *patch.Document
		changed = true
	}
	if patch.Image != nil {
		a.Image = *patch.Image
		changed = true
	}
	if patch.TeamID != nil {
		a.TeamID = *patch.TeamID
		changed = true
	}
	if changed {
		a.UpdatedAt = r.now()
	}

	r.store.athletes[athleteID] = a
	return a, true, nil
}

func (r *AthleteRepository) Delete(_ context.Context, athleteID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.athletes[athleteID]; !ok {
		return false, nil
	}
	delete(r.store.athletes, athleteID)

	return true, nil
}

// collect assumes the read lock is held.
func (r *AthleteRepository) collect(keep func(athlete.Athlete) bool) []athlete.Athlete {
	out := make([]athlete.Athlete, 0, len(r.store.athletes))
	for _, a := range r.store.athletes {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
