package dto

type Snapshot struct {
	State        string
	Phase        string
	Running      bool
	TimeLeft     int
	Clock        string
	PhaseMinutes int
	StudyMinutes int
	BreakMinutes int
	Progress     float64
	Subject      string
	Questions    int
	Correct      int
	// Accuracy is the rounded correct percentage, 0 with no questions.
	Accuracy int
}

type Event struct {
	Kind           string
	Phase          string
	PlannedMinutes int
	Recorded       bool
	Err            error
	Snapshot       Snapshot
}

const (
	EventStarted   = "started"
	EventPaused    = "paused"
	EventTick      = "tick"
	EventCompleted = "completed"
	EventStopped   = "stopped"
	EventFault     = "fault"

	PhaseStudy = "study"
	PhaseBreak = "break"
)
