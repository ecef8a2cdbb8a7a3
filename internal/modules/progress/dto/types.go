package dto

import "time"

type AchievementOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"isUnlocked"`
}

type TodayOutput struct {
	Date     string  `json:"date"`
	Minutes  int     `json:"minutes"`
	Goal     int     `json:"goal"`
	Fraction float64 `json:"fraction"`
	Status   string  `json:"status"`
}

type SummaryOutput struct {
	Streak         int                 `json:"streak"`
	Unlocked       int                 `json:"unlocked"`
	Total          int                 `json:"total"`
	Rank           string              `json:"rank"`
	NextRank       string              `json:"nextRank,omitempty"`
	NextRankNeeded int                 `json:"nextRankNeeded,omitempty"`
	TopRank        bool                `json:"topRank"`
	TotalMinutes   int                 `json:"totalMinutes"`
	Sessions       int                 `json:"sessions"`
	Achievements   []AchievementOutput `json:"achievements"`
	Today          TodayOutput         `json:"today"`
}

type SubjectStatOutput struct {
	Subject   string  `json:"subject"`
	Minutes   int     `json:"minutes"`
	Sessions  int     `json:"sessions"`
	Questions int     `json:"questions"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

type DayOutput struct {
	Date      string         `json:"date"`
	Minutes   int            `json:"minutes"`
	Questions int            `json:"questions"`
	Correct   int            `json:"correct"`
	Sessions  int            `json:"sessions"`
	Subjects  map[string]int `json:"subjects"`
	Status    string         `json:"status"`
}

type CalendarDayOutput struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Status  string `json:"status"`
}

type MonthOutput struct {
	Year   int                 `json:"year"`
	Month  time.Month          `json:"month"`
	Offset int                 `json:"offset"`
	Goal   int                 `json:"goal"`
	Days   []CalendarDayOutput `json:"days"`
}
