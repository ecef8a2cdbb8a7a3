package domain

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	apperrors "studytracker/internal/platform/errors"
)

type ColorMode string

const (
	ColorModeVibrant    ColorMode = "vibrant"
	ColorModeMonochrome ColorMode = "monochrome"
)

var BackgroundModes = []string{"default", "grid", "dots", "aurora", "solid", "stars", "ocean", "sunset"}

const (
	DefaultDailyGoal      = 120
	DefaultPrimaryColor   = "#ffffff"
	DefaultColorMode      = ColorModeVibrant
	DefaultBackgroundMode = "default"
	DefaultVolume         = 0.5
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type Settings struct {
	DailyGoal            int
	PrimaryColor         string
	ColorMode            ColorMode
	BackgroundMode       string
	Volume               float64
	NotificationsEnabled bool
}

func Defaults() Settings {
	return Settings{
		DailyGoal:            DefaultDailyGoal,
		PrimaryColor:         DefaultPrimaryColor,
		ColorMode:            DefaultColorMode,
		BackgroundMode:       DefaultBackgroundMode,
		Volume:               DefaultVolume,
		NotificationsEnabled: true,
	}
}

// Normalize replaces unknown enumerations with their defaults and clamps
// numbers into range. It never fails.
func (s Settings) Normalize() Settings {
	if s.DailyGoal < 1 {
		s.DailyGoal = DefaultDailyGoal
	}
	if !hexColor.MatchString(s.PrimaryColor) {
		s.PrimaryColor = DefaultPrimaryColor
	}
	if !ValidColorMode(string(s.ColorMode)) {
		s.ColorMode = DefaultColorMode
	}
	if !ValidBackgroundMode(s.BackgroundMode) {
		s.BackgroundMode = DefaultBackgroundMode
	}
	s.Volume = ClampVolume(s.Volume)
	return s
}

func ClampVolume(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ValidColorMode(mode string) bool {
	return mode == string(ColorModeVibrant) || mode == string(ColorModeMonochrome)
}

func ValidBackgroundMode(mode string) bool {
	return slices.Contains(BackgroundModes, mode)
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	DailyGoal            *int
	PrimaryColor         *string
	ColorMode            *string
	BackgroundMode       *string
	Volume               *float64
	NotificationsEnabled *bool
}

// Apply validates p against s. Enumerations and colours must be valid;
// the goal is raised to one minute and the volume clamped to [0, 1].
func (s Settings) Apply(p Patch) (Settings, error) {
	if p.DailyGoal != nil {
		s.DailyGoal = max(*p.DailyGoal, 1)
	}
	if p.PrimaryColor != nil {
		color := strings.TrimSpace(*p.PrimaryColor)
		if !hexColor.MatchString(color) {
			return Settings{}, fmt.Errorf("primary color %q: %w", color, apperrors.ErrInvalidInput)
		}
		s.PrimaryColor = strings.ToLower(color)
	}
	if p.ColorMode != nil {
		if !ValidColorMode(*p.ColorMode) {
			return Settings{}, fmt.Errorf("color mode %q: %w", *p.ColorMode, apperrors.ErrInvalidInput)
		}
		s.ColorMode = ColorMode(*p.ColorMode)
	}
	if p.BackgroundMode != nil {
		if !ValidBackgroundMode(*p.BackgroundMode) {
			return Settings{}, fmt.Errorf("background mode %q (want one of %s): %w", *p.BackgroundMode, strings.Join(BackgroundModes, ", "), apperrors.ErrInvalidInput)
		}
		s.BackgroundMode = *p.BackgroundMode
	}
	if p.Volume != nil {
		s.Volume = ClampVolume(*p.Volume)
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	return s, nil
}
