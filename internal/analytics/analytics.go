// Package analytics derives day-bucketed completion and mood series plus
// summary rollups. Everything is a pure function of (habits, moods, now,
// window); nothing is cached or persisted.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/models"
	"github.com/habitheroapp/habithero/internal/tracker"
)

// DayPoint is one bucket of the daily series.
type DayPoint struct {
	Date      time.Time
	Completed int
	Total     int
	Mood      *models.MoodKind
}

// StreakSummary aggregates per-habit streaks.
type StreakSummary struct {
	Total   int
	Average int
	Longest int
	Active  int
}

// CategoryStat is the completed-today breakdown for one habit category.
type CategoryStat struct {
	Category   string
	Total      int
	Completed  int
	Percentage int
}

// BuildDailySeries returns exactly windowDays buckets, oldest first, ending
// on the calendar day of now. A bucket counts habits whose last completion
// falls on that day and carries that day's mood entry if present.
func BuildDailySeries(habits []models.Habit, moods []models.Mood, now time.Time, windowDays int) []DayPoint {
	if windowDays <= 0 {
		return []DayPoint{}
	}

	moodByDay := make(map[string]models.MoodKind, len(moods))
	for _, m := range moods {
		moodByDay[dateutil.DayKey(m.Date)] = m.Mood
	}

	series := make([]DayPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := dateutil.StartOfDay(now.AddDate(0, 0, -i))
		point := DayPoint{
			Date:      day,
			Completed: tracker.CompletedToday(habits, day),
			Total:     len(habits),
		}
		if mood, ok := moodByDay[dateutil.DayKey(day)]; ok {
			m := mood
			point.Mood = &m
		}
		series = append(series, point)
	}
	return series
}

// CompletionRate returns the percentage of possible completions achieved
// over the series. Zero habits yields 0, never a division by zero.
func CompletionRate(series []DayPoint, habitCount int) int {
	possible := len(series) * habitCount
	if possible == 0 {
		return 0
	}
	completed := 0
	for _, p := range series {
		completed += p.Completed
	}
	return int(math.Round(float64(completed) / float64(possible) * 100))
}

// StreakStats summarizes the current streak distribution.
func StreakStats(habits []models.Habit) StreakSummary {
	var s StreakSummary
	for _, h := range habits {
		s.Total += h.Streak
		if h.Streak > s.Longest {
			s.Longest = h.Streak
		}
		if h.Streak > 0 {
			s.Active++
		}
	}
	if len(habits) > 0 {
		s.Average = int(math.Round(float64(s.Total) / float64(len(habits))))
	}
	return s
}

// CategoryBreakdown returns the completed-today ratio per habit category,
// sorted by category name for stable output.
func CategoryBreakdown(habits []models.Habit, now time.Time) []CategoryStat {
	byCategory := make(map[string]*CategoryStat)
	for _, h := range habits {
		stat, ok := byCategory[h.Category]
		if !ok {
			stat = &CategoryStat{Category: h.Category}
			byCategory[h.Category] = stat
		}
		stat.Total++
		if tracker.CompletedOn(h, now) {
			stat.Completed++
		}
	}

	out := make([]CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		if stat.Total > 0 {
			stat.Percentage = int(math.Round(float64(stat.Completed) / float64(stat.Total) * 100))
		}
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
