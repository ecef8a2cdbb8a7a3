package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("already exists")
	ErrSubjectRequired = errors.New("select a subject before starting")
	ErrInvalidBackup   = errors.New("invalid backup document")
	ErrTimerFault      = errors.New("timer fault")
)
