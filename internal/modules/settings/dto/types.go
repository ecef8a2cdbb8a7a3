package dto

type SettingsOutput struct {
	DailyGoal            int     `json:"dailyGoal"`
	PrimaryColor         string  `json:"primaryColor"`
	ColorMode            string  `json:"colorMode"`
	BackgroundMode       string  `json:"backgroundMode"`
	Volume               float64 `json:"volume"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// UpdateInput leaves nil fields unchanged.
type UpdateInput struct {
	DailyGoal            *int
	PrimaryColor         *string
	ColorMode            *string
	BackgroundMode       *string
	Volume               *float64
	NotificationsEnabled *bool
}
