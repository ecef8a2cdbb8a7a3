package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/timer/domain"
)

func tickN(e *domain.Engine, n int) (fired int) {
	for i := 0; i < n; i++ {
		if e.Tick() {
			fired++
		}
	}
	return fired
}

func TestInitialState(t *testing.T) {
	e := domain.NewEngine(25, 5)
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, 1500, e.TimeLeft())
	assert.False(t, e.Running())
	assert.Equal(t, 0.0, e.Progress())
}

func TestFullStudyPhaseFiresCompletionOnce(t *testing.T) {
	e := domain.NewEngine(25, 5)
	require.True(t, e.Start())
	assert.Equal(t, domain.StateStudyRunning, e.State())

	assert.Equal(t, 1, tickN(e, 1500))
	assert.Equal(t, 0, e.TimeLeft())
	assert.True(t, e.Expired())
	assert.Equal(t, 1.0, e.Progress())

	// Further ticks at zero neither re-fire nor go negative.
	assert.Equal(t, 0, tickN(e, 3))
	assert.Equal(t, 0, e.TimeLeft())

	c, ok := e.Complete()
	require.True(t, ok)
	assert.Equal(t, domain.Completion{Phase: domain.PhaseStudy, PlannedMinutes: 25, Record: true}, c)
	assert.Equal(t, domain.StateBreakPaused, e.State())
	assert.Equal(t, 300, e.TimeLeft())

	_, ok = e.Complete()
	assert.False(t, ok, "completion is one-shot")
}

func TestBreakCompletionReturnsToIdle(t *testing.T) {
	e := domain.NewEngine(1, 2)
	e.Start()
	tickN(e, 60)
	_, _ = e.Complete()

	require.True(t, e.Start())
	assert.Equal(t, domain.StateBreakRunning, e.State())
	assert.Equal(t, 1, tickN(e, 120))
	c, ok := e.Complete()
	require.True(t, ok)
	assert.Equal(t, domain.PhaseBreak, c.Phase)
	assert.False(t, c.Record)
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, 60, e.TimeLeft())
}

func TestStopDuringStudyCreditsFullPlannedLength(t *testing.T) {
	e := domain.NewEngine(25, 5)
	e.Start()
	tickN(e, 2)

	c, ok := e.Stop()
	require.True(t, ok)
	assert.Equal(t, domain.Completion{Phase: domain.PhaseStudy, PlannedMinutes: 25, Record: true}, c)
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, 1500, e.TimeLeft())
}

func TestStopWhilePausedStudyAlsoRecords(t *testing.T) {
	e := domain.NewEngine(30, 5)
	e.Start()
	tickN(e, 10)
	e.Pause()
	c, ok := e.Stop()
	require.True(t, ok)
	assert.True(t, c.Record)
	assert.Equal(t, 30, c.PlannedMinutes)
}

func TestStopDuringBreakDiscards(t *testing.T) {
	e := domain.NewEngine(1, 5)
	e.Start()
	tickN(e, 60)
	e.Complete()
	e.Start()
	tickN(e, 10)

	c, ok := e.Stop()
	require.True(t, ok)
	assert.False(t, c.Record)
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, 60, e.TimeLeft())
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	e := domain.NewEngine(25, 5)
	_, ok := e.Stop()
	assert.False(t, ok)
	assert.Equal(t, domain.StateIdle, e.State())
}

func TestPauseFreezesClock(t *testing.T) {
	e := domain.NewEngine(25, 5)
	assert.False(t, e.Pause(), "nothing to pause while idle")
	e.Start()
	tickN(e, 5)
	require.True(t, e.Pause())
	assert.Equal(t, domain.StateStudyPaused, e.State())
	assert.Equal(t, 0, tickN(e, 100))
	assert.Equal(t, 1495, e.TimeLeft())

	require.True(t, e.Start())
	assert.False(t, e.Start(), "already running")
	tickN(e, 1)
	assert.Equal(t, 1494, e.TimeLeft())
}

func TestSetMinutesRetargetsOnlyWhenNotRunning(t *testing.T) {
	e := domain.NewEngine(25, 5)
	assert.Equal(t, 50, e.SetStudyMinutes(50))
	assert.Equal(t, 3000, e.TimeLeft())

	e.Start()
	tickN(e, 10)
	e.SetStudyMinutes(10)
	assert.Equal(t, 2990, e.TimeLeft(), "in-progress phase is not altered")
	assert.Equal(t, 50, e.PhaseMinutes())

	c, _ := e.Stop()
	assert.Equal(t, 50, c.PlannedMinutes)
	assert.Equal(t, 600, e.TimeLeft(), "deferred length applies to the next phase")

	e.SetBreakMinutes(7)
	assert.Equal(t, 600, e.TimeLeft(), "break length does not touch a loaded study phase")
	assert.Equal(t, 7, e.BreakMinutes())
}

func TestSetBreakMinutesWhileBreakLoaded(t *testing.T) {
	e := domain.NewEngine(1, 5)
	e.Start()
	tickN(e, 60)
	e.Complete()
	e.SetBreakMinutes(10)
	assert.Equal(t, 600, e.TimeLeft())
}

func TestDegenerateMinutesAreCoerced(t *testing.T) {
	e := domain.NewEngine(0, -4)
	assert.Equal(t, 1, e.StudyMinutes())
	assert.Equal(t, 1, e.BreakMinutes())
	assert.Equal(t, 1, e.SetStudyMinutes(0))
	assert.Equal(t, 60, e.TimeLeft())
}

func TestParseMinutes(t *testing.T) {
	tests := map[string]int{"": 1, "abc": 1, "0": 1, "-5": 1, " 45 ": 45, "1": 1}
	for in, want := range tests {
		assert.Equal(t, want, domain.ParseMinutes(in), "input %q", in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", domain.FormatClock(1500))
	assert.Equal(t, "00:09", domain.FormatClock(9))
	assert.Equal(t, "120:00", domain.FormatClock(7200))
	assert.Equal(t, "00:00", domain.FormatClock(-3))
}
