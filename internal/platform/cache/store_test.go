package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := s.Get(ctx, "teams"); ok {
		t.Fatalf("expected miss on empty store")
	}

	s.Set(ctx, "teams", []string{"a", "b"})
	value, ok := s.Get(ctx, "teams")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if items, _ := value.([]string); len(items) != 2 {
		t.Fatalf("unexpected cached value: %+v", value)
	}

	s.Delete(ctx, "teams")
	if _, ok := s.Get(ctx, "teams"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_GetOrLoadLoadsOnce(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return "news-list", nil
	}

	for i := 0; i < 3; i++ {
		value, err := s.GetOrLoad(ctx, "news", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if value != "news-list" {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if calls != 1 {
		t.Fatalf("expected one loader call, got %d", calls)
	}
}

func TestStore_GetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	s := NewStore(time.Minute)

	var loads atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		<-release
		return "standings", nil
	}

	const callers = 8
	results := make([]any, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			value, err := s.GetOrLoad(context.Background(), "teams", loader)
			if err != nil {
				t.Errorf("get or load: %v", err)
				return
			}
			results[slot] = value
		}(i)
	}

	// Give the goroutines a moment to pile onto the same key, then let
	// the leader finish.
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected a single loader run, got %d", got)
	}
	for slot, value := range results {
		if value != "standings" {
			t.Fatalf("caller %d got %v", slot, value)
		}
	}
}

func TestStore_GetOrLoadPropagatesError(t *testing.T) {
	s := NewStore(time.Minute)

	wantErr := fmt.Errorf("load failed")
	_, err := s.GetOrLoad(context.Background(), "news", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if err == nil {
		t.Fatalf("expected loader error")
	}

	if _, ok := s.Get(context.Background(), "news"); ok {
		t.Fatalf("failed load must not populate the cache")
	}
}
