package out

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"studytracker/internal/modules/timer/domain"
	timerout "studytracker/internal/modules/timer/port/out"
)

// BellCuePlayer rings the terminal bell. The alarm rings three times; start
// and stop ring once. A terminal bell has no loudness, so any volume above
// zero rings and zero is silent.
type BellCuePlayer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellCuePlayer(w io.Writer) timerout.CuePlayer {
	return &BellCuePlayer{w: w}
}

func (p *BellCuePlayer) Play(_ context.Context, cue domain.Cue, volume float64) error {
	if volume <= 0 || p.w == nil {
		return nil
	}
	rings := 1
	if cue == domain.CueAlarm {
		rings = 3
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.w, strings.Repeat("\a", rings)); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// SilentCuePlayer discards every cue.
type SilentCuePlayer struct{}

func (SilentCuePlayer) Play(context.Context, domain.Cue, float64) error { return nil }
