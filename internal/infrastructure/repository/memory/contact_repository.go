package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/contact"
)

type ContactRepository struct {
	mu    sync.RWMutex
	items map[string]contact.Message
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{items: make(map[string]contact.Message)}
}

func (r *ContactRepository) List(_ context.Context) ([]contact.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contact.Message, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *ContactRepository) Create(_ context.Context, m contact.Message) (contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = m
	return m, nil
}
