package ticker_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studytracker/internal/platform/ticker"
)

func TestIntervalStopsAfterCancel(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tok := ticker.Interval{}.Every(5*time.Millisecond, func() { calls.Add(1) })

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	tok.Cancel()
	tok.Cancel()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), after+1, "at most one in-flight tick may land after cancel")
}

func TestManualAdvanceAndCancel(t *testing.T) {
	t.Parallel()
	m := ticker.NewManual()
	calls := 0
	tok := m.Every(time.Second, func() { calls++ })

	m.Advance(3)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, m.Active())

	tok.Cancel()
	tok.Cancel()
	m.Advance(5)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, m.Active())
}

func TestManualCancelFromInsideCallback(t *testing.T) {
	t.Parallel()
	m := ticker.NewManual()
	calls := 0
	var tok ticker.Token
	tok = m.Every(time.Second, func() {
		calls++
		if calls == 2 {
			tok.Cancel()
		}
	})

	m.Advance(10)
	assert.Equal(t, 2, calls)
}
