package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store is a TTL-bound in-process cache for the hot public listings
// (standings, published news). A ttl of zero keeps entries forever.
type Store struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
	group flightGroup
}

type item struct {
	value   any
	staleAt time.Time
}

func (i item) stale(now time.Time) bool {
	return !i.staleAt.IsZero() && !i.staleAt.After(now)
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]item),
		ttl:   ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.stale(time.Now()) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, false
	}

	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	it := item{value: value}
	if s.ttl > 0 {
		it.staleAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value, or runs loader and caches the
// result. Concurrent callers for the same key share a single loader
// run; failed loads cache nothing.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	return s.group.do(key, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}

		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, value)
		return value, nil
	})
}

// flightGroup collapses concurrent loads for the same key into one
// call; late arrivals block on the leader's result.
type flightGroup struct {
	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	done  chan struct{}
	value any
	err   error
}

func (g *flightGroup) do(key string, fn func() (any, error)) (any, error) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flight)
	}
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.value, f.err
	}

	f := &flight{done: make(chan struct{})}
	g.inflight[key] = f
	g.mu.Unlock()

	f.value, f.err = fn()

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
	close(f.done)

	return f.value, f.err
}
