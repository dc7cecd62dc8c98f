package memory

import (
	"context"
	"sort"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
)

type AdminTeamRepository struct {
	store *AdminStore
	now   func() time.Time
}

func NewAdminTeamRepository(store *AdminStore, now func() time.Time) *AdminTeamRepository {
	if now == nil {
		now = time.Now
	}
	return &AdminTeamRepository{store: store, now: now}
}

func (r *AdminTeamRepository) List(_ context.Context) ([]adminteam.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]adminteam.Team, 0, len(r.store.teams))
	for _, t := range r.store.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *AdminTeamRepository) GetByID(_ context.Context, teamID string) (adminteam.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.teams[teamID]
	if !ok {
		return adminteam.Team{}, false, nil
	}

	return t, true, nil
}

func (r *AdminTeamRepository) Create(_ context.Context, t adminteam.Team) (adminteam.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.teams[t.ID] = t
	return t, nil
}

func (r *AdminTeamRepository) Update(_ context.Context, teamID string, patch adminteam.Patch) (adminteam.Team, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.teams[teamID]
	if !ok {
		return adminteam.Team{}, false, nil
	}

	changed := false
	if patch.Name != nil {
		t.Name = *patch.Name
		changed = true
	}
	if patch.Image != nil {
		t.Image = *patch.Image
		changed = true
	}
	if patch.Responsible != nil {
		t.Responsible = *patch.Responsible
		changed = true
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
		changed = true
	}
	if changed {
		t.UpdatedAt = r.now()
	}

	r.store.teams[teamID] = t
	return t, true, nil
}

func (r *AdminTeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[teamID]; !ok {
		return false, nil
	}
	delete(r.store.teams, teamID)
	for id, entry := range r.store.entries {
		if entry.TeamID == teamID {
			delete(r.store.entries, id)
		}
	}
	for id, a := range r.store.athletes {
		if a.TeamID == teamID {
			a.TeamID = ""
			r.store.athletes[id] = a
		}
	}

	return true, nil
}
