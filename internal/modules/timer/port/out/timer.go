package out

//go:generate mockgen -source=timer.go -destination=../../../../mocks/timer/mock_timer.go -package=mock_timer

import (
	"context"

	"studytracker/internal/modules/timer/domain"
)

// SessionRecorder turns a finished study phase into a stored session.
type SessionRecorder interface {
	Record(ctx context.Context, subject string, minutes, questions, correct int) error
}

// CuePlayer plays a cue at volume in [0, 1]. Volume 0 must be silent.
type CuePlayer interface {
	Play(ctx context.Context, cue domain.Cue, volume float64) error
}

type Notifier interface {
	Permission() domain.Permission
	RequestPermission(ctx context.Context) domain.Permission
	Notify(ctx context.Context, title, body string) error
}

// Preferences exposes the user settings the timer reacts to.
type Preferences interface {
	Volume(ctx context.Context) float64
	NotificationsEnabled(ctx context.Context) bool
}
