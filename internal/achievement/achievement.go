// Package achievement evaluates the static achievement catalog against the
// habit ledger and user stats. State is recomputed from scratch on every
// pass; unlock stickiness comes from diffing against the previous snapshot,
// not from persisting unlock flags.
package achievement

import (
	"time"

	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/models"
	"github.com/habitheroapp/habithero/internal/tracker"
)

// consistencyLookbackDays bounds the backward scan for all-habits days.
const consistencyLookbackDays = 365

// State is the derived status of one achievement.
type State struct {
	Definition
	Progress int
	Unlocked bool
}

// progressFunc computes the progress metric for one definition.
type progressFunc func(def Definition, habits []models.Habit, stats models.UserStats, now time.Time) int

// progressByCategory is the flat rule table: each category maps to a pure
// progress function over the ledger and stats.
var progressByCategory = map[Category]progressFunc{
	CategoryStreak: func(_ Definition, habits []models.Habit, _ models.UserStats, _ time.Time) int {
		return tracker.MaxStreak(habits)
	},
	CategoryLevel: func(_ Definition, _ []models.Habit, stats models.UserStats, _ time.Time) int {
		return stats.Level
	},
	CategoryCompletion: func(_ Definition, habits []models.Habit, _ models.UserStats, _ time.Time) int {
		return tracker.TotalCompletions(habits)
	},
	CategoryConsistency: func(_ Definition, habits []models.Habit, _ models.UserStats, now time.Time) int {
		return ConsistencyStreak(habits, now)
	},
	CategoryVariety: func(def Definition, habits []models.Habit, _ models.UserStats, _ time.Time) int {
		switch def.ID {
		case "diversified":
			return tracker.Categories(habits)
		case "habit-collector":
			return len(habits)
		}
		return 0
	},
}

// Evaluate computes the state of every catalog entry, in catalog order.
func Evaluate(habits []models.Habit, stats models.UserStats, now time.Time) []State {
	states := make([]State, 0, len(Catalog))
	for _, def := range Catalog {
		progress := 0
		if fn, ok := progressByCategory[def.Category]; ok {
			progress = fn(def, habits, stats, now)
		}
		states = append(states, State{
			Definition: def,
			Progress:   progress,
			Unlocked:   progress >= def.Requirement,
		})
	}
	return states
}

// Diff returns the achievements unlocked in cur but not in prev, in catalog
// order. Callers notify once per returned entry; an achievement already
// unlocked in prev is never reported again.
func Diff(prev, cur []State) []State {
	was := make(map[string]bool, len(prev))
	for _, s := range prev {
		if s.Unlocked {
			was[s.ID] = true
		}
	}
	var fresh []State
	for _, s := range cur {
		if s.Unlocked && !was[s.ID] {
			fresh = append(fresh, s)
		}
	}
	return fresh
}

// ConsistencyStreak counts consecutive calendar days, walking backward from
// today, on which every habit in the ledger has a completion dated that day.
// The scan stops at the first broken day and looks back at most a year. An
// empty ledger yields 0.
//
// Only the most recent completion timestamp is stored per habit; earlier
// days are reconstructed from the streak window, which by definition covers
// the consecutive days ending on the last-completed day.
func ConsistencyStreak(habits []models.Habit, now time.Time) int {
	if len(habits) == 0 {
		return 0
	}
	streak := 0
	for i := 0; i < consistencyLookbackDays; i++ {
		day := now.AddDate(0, 0, -i)
		completed := 0
		for _, h := range habits {
			if completedOnDay(h, day) {
				completed++
			}
		}
		if completed != len(habits) {
			break
		}
		streak++
	}
	return streak
}

// completedOnDay reports whether the habit has a completion dated day. The
// last-completed day always counts; days before it count while they fall
// inside the habit's streak window.
func completedOnDay(h models.Habit, day time.Time) bool {
	if h.LastCompleted == nil {
		return false
	}
	offset := dateutil.DaysBetween(day, *h.LastCompleted)
	if offset == 0 {
		return true
	}
	return offset > 0 && offset < h.Streak
}

// UnlockedCount returns how many states are unlocked.
func UnlockedCount(states []State) int {
	n := 0
	for _, s := range states {
		if s.Unlocked {
			n++
		}
	}
	return n
}
