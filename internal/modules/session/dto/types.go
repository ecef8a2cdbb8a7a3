package dto

import "time"

type RecordInput struct {
	Subject          string
	PlannedMinutes   int
	Questions        int
	CorrectQuestions int
	// At overrides the completion instant; zero means now.
	At time.Time
}

type SessionOutput struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	Duration         int       `json:"duration"`
	Questions        int       `json:"questions"`
	CorrectQuestions int       `json:"correctQuestions"`
	Date             time.Time `json:"date"`
	Completed        bool      `json:"completed"`
	JournalPath      string    `json:"journalPath,omitempty"`
}
