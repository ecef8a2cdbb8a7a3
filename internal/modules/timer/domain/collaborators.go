package domain

// Cue is a short sound played on a timer event.
type Cue string

const (
	CueStart Cue = "start"
	CueStop  Cue = "stop"
	CueAlarm Cue = "alarm"
)

// Permission mirrors the host's notification permission. The host owns it;
// the timer only reads it and asks for it.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

type EventKind string

const (
	EventStarted   EventKind = "started"
	EventPaused    EventKind = "paused"
	EventTick      EventKind = "tick"
	EventCompleted EventKind = "completed"
	EventStopped   EventKind = "stopped"
	EventFault     EventKind = "fault"
)

// Event reports a controller transition to subscribers.
type Event struct {
	Kind       EventKind
	Completion Completion
	// Recorded is set when the transition produced a session.
	Recorded bool
	Err      error
}

// CompletionMessage is the notification text for a finished phase.
func CompletionMessage(phase Phase) (title, body string) {
	if phase == PhaseBreak {
		return "Break finished!", "Time to get back to studying."
	}
	return "Focus finished!", "Good work! Time for a break."
}
