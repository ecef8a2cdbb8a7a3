// Package domain holds the study/break countdown state machine. It has no
// notion of wall time: the caller drives it with one Tick per second.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Phase string

const (
	PhaseStudy Phase = "study"
	PhaseBreak Phase = "break"
)

type State string

const (
	StateIdle         State = "idle"
	StateStudyRunning State = "study_running"
	StateStudyPaused  State = "study_paused"
	StateBreakRunning State = "break_running"
	StateBreakPaused  State = "break_paused"
)

func (s State) Running() bool {
	return s == StateStudyRunning || s == StateBreakRunning
}

func (s State) Phase() Phase {
	if s == StateBreakRunning || s == StateBreakPaused {
		return PhaseBreak
	}
	return PhaseStudy
}

const (
	DefaultStudyMinutes = 25
	DefaultBreakMinutes = 5
	MinMinutes          = 1
)

// Completion describes a phase that ended, by expiry or by Stop. Record is
// set when the phase was a study phase and must become a session.
type Completion struct {
	Phase          Phase
	PlannedMinutes int
	Record         bool
}

type Engine struct {
	studyMinutes int
	breakMinutes int

	state        State
	phaseMinutes int
	timeLeft     int
	expired      bool
}

func NewEngine(studyMinutes, breakMinutes int) *Engine {
	e := &Engine{
		studyMinutes: clampMinutes(studyMinutes),
		breakMinutes: clampMinutes(breakMinutes),
	}
	e.loadStudy()
	return e
}

func (e *Engine) State() State      { return e.state }
func (e *Engine) Phase() Phase      { return e.state.Phase() }
func (e *Engine) Running() bool     { return e.state.Running() }
func (e *Engine) TimeLeft() int     { return e.timeLeft }
func (e *Engine) PhaseMinutes() int { return e.phaseMinutes }
func (e *Engine) StudyMinutes() int { return e.studyMinutes }
func (e *Engine) BreakMinutes() int { return e.breakMinutes }
func (e *Engine) Expired() bool     { return e.expired }

// Progress is the elapsed fraction of the loaded phase, in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.phaseMinutes * 60
	if total <= 0 {
		return 0
	}
	return float64(total-e.timeLeft) / float64(total)
}

// Start resumes or begins the loaded phase. It reports whether the state
// changed.
func (e *Engine) Start() bool {
	if e.expired {
		return false
	}
	switch e.state {
	case StateIdle, StateStudyPaused:
		e.state = StateStudyRunning
	case StateBreakPaused:
		e.state = StateBreakRunning
	default:
		return false
	}
	return true
}

// Pause freezes a running phase. It reports whether the state changed.
func (e *Engine) Pause() bool {
	switch e.state {
	case StateStudyRunning:
		e.state = StateStudyPaused
	case StateBreakRunning:
		e.state = StateBreakPaused
	default:
		return false
	}
	return true
}

// Tick consumes one second. It returns true exactly once per phase, on the
// tick that reaches zero; later ticks are ignored until Complete or Stop.
func (e *Engine) Tick() bool {
	if !e.state.Running() || e.expired {
		return false
	}
	if e.timeLeft > 0 {
		e.timeLeft--
	}
	if e.timeLeft == 0 {
		e.expired = true
		return true
	}
	return false
}

// Complete applies the transition for an expired phase. A finished study
// phase loads the break without starting it; a finished break returns to
// Idle. ok is false when no phase has expired.
func (e *Engine) Complete() (c Completion, ok bool) {
	if !e.expired {
		return Completion{}, false
	}
	e.expired = false
	if e.state.Phase() == PhaseStudy {
		c = Completion{Phase: PhaseStudy, PlannedMinutes: e.phaseMinutes, Record: true}
		e.loadBreak()
		return c, true
	}
	c = Completion{Phase: PhaseBreak, PlannedMinutes: e.phaseMinutes}
	e.loadStudy()
	return c, true
}

// Stop ends the current phase early and returns to Idle. A stopped study
// phase is credited with its full planned length; a stopped break is
// discarded. Stop while Idle only resets the clock and reports ok=false.
func (e *Engine) Stop() (c Completion, ok bool) {
	e.expired = false
	switch e.state {
	case StateStudyRunning, StateStudyPaused:
		c = Completion{Phase: PhaseStudy, PlannedMinutes: e.phaseMinutes, Record: true}
		ok = true
	case StateBreakRunning, StateBreakPaused:
		c = Completion{Phase: PhaseBreak, PlannedMinutes: e.phaseMinutes}
		ok = true
	}
	e.loadStudy()
	return c, ok
}

// SetStudyMinutes stores the study length. When the study phase is loaded
// and not running, the clock is retargeted at once; otherwise the new length
// applies from the next study phase.
func (e *Engine) SetStudyMinutes(minutes int) int {
	e.studyMinutes = clampMinutes(minutes)
	if e.state == StateIdle || e.state == StateStudyPaused {
		e.phaseMinutes = e.studyMinutes
		e.timeLeft = e.studyMinutes * 60
	}
	return e.studyMinutes
}

// SetBreakMinutes is SetStudyMinutes for the break phase.
func (e *Engine) SetBreakMinutes(minutes int) int {
	e.breakMinutes = clampMinutes(minutes)
	if e.state == StateBreakPaused {
		e.phaseMinutes = e.breakMinutes
		e.timeLeft = e.breakMinutes * 60
	}
	return e.breakMinutes
}

func (e *Engine) loadStudy() {
	e.state = StateIdle
	e.phaseMinutes = e.studyMinutes
	e.timeLeft = e.studyMinutes * 60
}

func (e *Engine) loadBreak() {
	e.state = StateBreakPaused
	e.phaseMinutes = e.breakMinutes
	e.timeLeft = e.breakMinutes * 60
}

func clampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	return minutes
}

// ParseMinutes reads a user-entered length. Empty, malformed or
// non-positive text becomes MinMinutes.
func ParseMinutes(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return MinMinutes
	}
	return clampMinutes(n)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
