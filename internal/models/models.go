// Package models defines the persisted document types. JSON tags use the
// camelCase names of the export format, which is also the on-disk format.
package models

import "time"

// MoodKind is the daily mood value.
type MoodKind string

const (
	MoodHappy   MoodKind = "happy"
	MoodNeutral MoodKind = "neutral"
	MoodSad     MoodKind = "sad"
)

// Valid reports whether k is one of the known moods.
func (k MoodKind) Valid() bool {
	switch k {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	}
	return false
}

// Habit is one tracked habit. Only the most recent completion instant is
// stored; streak and total counters are maintained alongside it.
type Habit struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Emoji          string     `json:"emoji"`
	Category       string     `json:"category"`
	Target         int        `json:"target"`
	Streak         int        `json:"streak"`
	TotalCompleted int        `json:"totalCompleted"`
	LastCompleted  *time.Time `json:"lastCompleted,omitempty"`
}

// Mood is one day's mood entry.
type Mood struct {
	Date time.Time `json:"date"`
	Mood MoodKind  `json:"mood"`
	Note string    `json:"note,omitempty"`
}

// UserStats carries the gamification state. XP and XPToNext are derived
// from TotalXP but persisted for the export format.
type UserStats struct {
	Level    int       `json:"level"`
	XP       int       `json:"xp"`
	XPToNext int       `json:"xpToNext"`
	TotalXP  int       `json:"totalXP"`
	Badges   []string  `json:"badges"`
	JoinDate time.Time `json:"joinDate"`
}

// HasBadge reports whether the badge has already been granted.
func (s UserStats) HasBadge(badge string) bool {
	for _, b := range s.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// AppData is the whole persisted document.
type AppData struct {
	Habits      []Habit   `json:"habits"`
	Moods       []Mood    `json:"moods"`
	UserStats   UserStats `json:"userStats"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// DefaultData is the first-run document: four starter habits and a fresh
// level-1 user.
func DefaultData(now time.Time) AppData {
	return AppData{
		Habits: []Habit{
			{ID: "1", Name: "Drink Water", Emoji: "💧", Category: "Health", Target: 8},
			{ID: "2", Name: "Read Books", Emoji: "📚", Category: "Learning", Target: 1},
			{ID: "3", Name: "Exercise", Emoji: "🏃", Category: "Fitness", Target: 1},
			{ID: "4", Name: "Meditate", Emoji: "🧘", Category: "Wellness", Target: 1},
		},
		Moods: []Mood{},
		UserStats: UserStats{
			Level:    1,
			XP:       0,
			XPToNext: 1000,
			TotalXP:  0,
			Badges:   []string{},
			JoinDate: now,
		},
		LastUpdated: now,
	}
}
