// Package ticker schedules a recurring callback behind a cancellation token.
package ticker

import (
	"sync"
	"time"
)

// Scheduler starts a recurring callback.
type Scheduler interface {
	Every(period time.Duration, fn func()) Token
}

// Token stops the callback it was returned for. Cancel is idempotent and safe
// to call from inside the callback itself.
type Token interface {
	Cancel()
}

// Interval drives callbacks from a time.Ticker, one goroutine per token.
type Interval struct{}

func (Interval) Every(period time.Duration, fn func()) Token {
	tok := &intervalToken{stop: make(chan struct{})}
	t := time.NewTicker(period)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-tok.stop:
				return
			case <-t.C:
				// A tick and a cancel can become ready together; the stop
				// channel wins.
				select {
				case <-tok.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return tok
}

type intervalToken struct {
	once sync.Once
	stop chan struct{}
}

func (t *intervalToken) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

// Manual fires callbacks only when Advance is called. Tests use it in place
// of Interval.
type Manual struct {
	mu     sync.Mutex
	active []*manualToken
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(_ time.Duration, fn func()) Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	tok := &manualToken{owner: m, fn: fn}
	m.active = append(m.active, tok)
	return tok
}

// Advance fires every live callback n times, re-checking cancellation before
// each call.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, tok := range m.snapshot() {
			if tok.live() {
				tok.fn()
			}
		}
	}
}

// Active reports how many tokens have not been cancelled.
func (m *Manual) Active() int {
	return len(m.snapshot())
}

func (m *Manual) snapshot() []*manualToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*manualToken, 0, len(m.active))
	for _, tok := range m.active {
		if tok.live() {
			out = append(out, tok)
		}
	}
	return out
}

func (m *Manual) remove(target *manualToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.active[:0]
	for _, tok := range m.active {
		if tok != target {
			kept = append(kept, tok)
		}
	}
	m.active = kept
}

type manualToken struct {
	owner     *Manual
	fn        func()
	mu        sync.Mutex
	cancelled bool
}

func (t *manualToken) live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.cancelled
}

func (t *manualToken) Cancel() {
	t.mu.Lock()
	already := t.cancelled
	t.cancelled = true
	t.mu.Unlock()
	if !already {
		t.owner.remove(t)
	}
}
