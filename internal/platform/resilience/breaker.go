package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned by Allow while calls are being shed.
var ErrBreakerOpen = errors.New("breaker is open")

type BreakerState int8

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// BreakerConfig tunes the breaker in front of the object store. Zero
// values fall back to defaults inside NewBreaker; Enabled is the
// caller's concern.
type BreakerConfig struct {
	Enabled  bool
	Failures int           // consecutive failures before opening
	Cooldown time.Duration // how long the breaker sheds calls once open
	Probes   int           // trial calls admitted while half-open
}

func (c BreakerConfig) sanitized() BreakerConfig {
	if c.Failures < 1 {
		c.Failures = 5
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 15 * time.Second
	}
	if c.Probes < 1 {
		c.Probes = 2
	}
	return c
}

// Breaker sheds calls to a flaky dependency. It opens after a run of
// consecutive failures, stays open for the cooldown, then admits a
// limited number of probe calls; the probes decide whether it closes
// again or reopens.
type Breaker struct {
	mu    sync.Mutex
	cfg   BreakerConfig
	clock func() time.Time

	state     BreakerState
	failures  int
	openedAt  time.Time
	probing   int
	probeWins int
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg.sanitized(),
		clock: time.Now,
	}
}

// Allow reports whether the caller may proceed. While half-open it
// also reserves one of the probe slots.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh()

	switch b.state {
	case BreakerOpen:
		return ErrBreakerOpen
	case BreakerHalfOpen:
		if b.probing >= b.cfg.Probes {
			return ErrBreakerOpen
		}
		b.probing++
	}

	return nil
}

func (b *Breaker) MarkSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.releaseProbe()
		b.probeWins++
		if b.probeWins >= b.cfg.Probes && b.probing == 0 {
			b.reset()
		}
	}
}

func (b *Breaker) MarkFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.cfg.Failures {
			b.trip()
		}
	case BreakerHalfOpen:
		b.releaseProbe()
		b.trip()
	case BreakerOpen:
		b.openedAt = b.clock()
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh()
	return b.state
}

// refresh moves an expired open breaker into half-open. Callers hold
// the lock.
func (b *Breaker) refresh() {
	if b.state == BreakerOpen && b.clock().Sub(b.openedAt) >= b.cfg.Cooldown {
		b.state = BreakerHalfOpen
		b.probing = 0
		b.probeWins = 0
	}
}

func (b *Breaker) releaseProbe() {
	if b.probing > 0 {
		b.probing--
	}
}

func (b *Breaker) trip() {
	b.state = BreakerOpen
	b.openedAt = b.clock()
	b.probing = 0
	b.probeWins = 0
}

func (b *Breaker) reset() {
	b.state = BreakerClosed
	b.failures = 0
	b.openedAt = time.Time{}
}
