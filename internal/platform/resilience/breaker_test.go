package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(failures, probes int, cooldown time.Duration) (*Breaker, *time.Time) {
	b := NewBreaker(BreakerConfig{Enabled: true, Failures: failures, Cooldown: cooldown, Probes: probes})
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b.clock = func() time.Time { return now }
	return b, &now
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b, now := newTestBreaker(2, 1, 5*time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow while closed: %v", err)
	}

	b.MarkFailure()
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.MarkFailure()
	if state := b.State(); state != BreakerOpen {
		t.Fatalf("expected open at the failure threshold, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected calls shed while open, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected a probe after the cooldown, got %v", err)
	}
	if state := b.State(); state != BreakerHalfOpen {
		t.Fatalf("expected half-open, got %s", state)
	}

	b.MarkSuccess()
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected closed after a winning probe, got %s", state)
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(1, 1, 5*time.Second)

	b.MarkFailure()
	if state := b.State(); state != BreakerOpen {
		t.Fatalf("expected open, got %s", state)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected a probe after the cooldown, got %v", err)
	}

	b.MarkFailure()
	if state := b.State(); state != BreakerOpen {
		t.Fatalf("expected reopen after a failed probe, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected calls shed again, got %v", err)
	}
}

func TestBreaker_LimitsConcurrentProbes(t *testing.T) {
	b, now := newTestBreaker(1, 1, 5*time.Second)

	b.MarkFailure()
	*now = now.Add(6 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected first probe slot, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected second concurrent probe rejected, got %v", err)
	}
}

func TestBreaker_SuccessResetsFailureRun(t *testing.T) {
	b, _ := newTestBreaker(2, 1, 5*time.Second)

	b.MarkFailure()
	b.MarkSuccess()
	b.MarkFailure()
	if state := b.State(); state != BreakerClosed {
		t.Fatalf("expected an interrupted failure run to stay closed, got %s", state)
	}
}
