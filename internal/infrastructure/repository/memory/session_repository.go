package memory

import (
	"context"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/adminsession"
)

type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]adminsession.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{items: make(map[string]adminsession.Session)}
}

func (r *SessionRepository) Get(_ context.Context, token string) (adminsession.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[token]
	if !ok {
		return adminsession.Session{}, false, nil
	}

	return s, true, nil
}

func (r *SessionRepository) Save(_ context.Context, s adminsession.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.Token] = s
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[token]; !ok {
		return false, nil
	}
	delete(r.items, token)

	return true, nil
}
