package persistence

// Storage keys. Values are strings: JSON for collections and booleans, plain
// decimal text for numbers.
const (
	KeySubjects             = "study-subjects"
	KeySessions             = "study-sessions"
	KeyDailyGoal            = "study-daily-goal"
	KeyPrimaryColor         = "study-primary-color"
	KeyColorMode            = "study-color-mode"
	KeyBackgroundMode       = "study-background-mode"
	KeyVolume               = "study-volume"
	KeyNotificationsEnabled = "study-notifications-enabled"
	KeyLibrary              = "study-library-books"
)
