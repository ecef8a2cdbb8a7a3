// Package domain defines the backup document: one JSON object carrying the
// catalog, the session history, the settings and the reading list.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "studytracker/internal/platform/errors"
)

const (
	Version         = 1
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// State is the stored text of every key a backup covers. Empty strings mean
// the key is absent.
type State struct {
	Subjects             string
	Sessions             string
	Library              string
	DailyGoal            string
	PrimaryColor         string
	ColorMode            string
	BackgroundMode       string
	Volume               string
	NotificationsEnabled string
}

type Document struct {
	Subjects             json.RawMessage `json:"subjects"`
	Sessions             json.RawMessage `json:"sessions"`
	DailyGoal            string          `json:"dailyGoal"`
	PrimaryColor         string          `json:"primaryColor"`
	ColorMode            string          `json:"colorMode"`
	BackgroundMode       string          `json:"backgroundMode"`
	Volume               string          `json:"volume"`
	NotificationsEnabled string          `json:"notificationsEnabled"`
	Library              json.RawMessage `json:"library"`
	Timestamp            string          `json:"timestamp"`
	Version              int             `json:"version"`
}

var emptyArray = json.RawMessage("[]")

// Export renders state as an indented document. Settings keep their stored
// text; absent ones are exported with their defaults.
func Export(state State, now time.Time) ([]byte, error) {
	doc := Document{
		Subjects:             arrayOrEmpty(state.Subjects),
		Sessions:             arrayOrEmpty(state.Sessions),
		DailyGoal:            orDefault(state.DailyGoal, "120"),
		PrimaryColor:         orDefault(state.PrimaryColor, "#ffffff"),
		ColorMode:            orDefault(state.ColorMode, "vibrant"),
		BackgroundMode:       orDefault(state.BackgroundMode, "default"),
		Volume:               orDefault(state.Volume, "0.5"),
		NotificationsEnabled: orDefault(state.NotificationsEnabled, "true"),
		Library:              arrayOrEmpty(state.Library),
		Timestamp:            now.UTC().Format(timestampLayout),
		Version:              Version,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// FileName is the suggested name of a backup taken at now.
func FileName(now time.Time) string {
	return "study-tracker-backup-" + now.Format("2006-01-02") + ".json"
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func arrayOrEmpty(raw string) json.RawMessage {
	if !isArray(json.RawMessage(raw)) || !json.Valid([]byte(raw)) {
		return emptyArray
	}
	return json.RawMessage(raw)
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), apperrors.ErrInvalidBackup)
}
