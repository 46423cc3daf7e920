// Package tracker implements the habit ledger: completion toggles, streak
// maintenance and the aggregate counters the rest of the app derives from.
//
// All operations take the habit slice by value and return a new slice; the
// caller owns the surrounding document and its load/save lifecycle. "Now" is
// always an explicit parameter so a whole evaluation pass sees one clock.
package tracker

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/models"
)

// ErrNotFound is returned when an operation references a habit id that is
// not in the ledger. Callers treat it as a no-op, never as fatal.
var ErrNotFound = errors.New("habit not found")

// Draft holds the user-editable fields of a habit.
type Draft struct {
	Name     string
	Emoji    string
	Category string
	Target   int
}

// ToggleResult describes what a toggle did.
type ToggleResult struct {
	// Completed is true when the toggle marked the habit done, false when
	// it reverted a same-day completion.
	Completed bool
	Habit     models.Habit
}

// ToggleCompletion flips the completion state of the habit for the calendar
// day of now. A habit already completed today is uncompleted: LastCompleted
// is cleared and streak/total are decremented, floored at zero. Otherwise
// the habit is completed: LastCompleted=now, streak and total increment.
func ToggleCompletion(habits []models.Habit, id string, now time.Time) ([]models.Habit, ToggleResult, error) {
	idx := indexOf(habits, id)
	if idx < 0 {
		return habits, ToggleResult{}, ErrNotFound
	}

	out := make([]models.Habit, len(habits))
	copy(out, habits)

	h := out[idx]
	if h.LastCompleted != nil && dateutil.SameDay(*h.LastCompleted, now) {
		h.LastCompleted = nil
		h.Streak = max(0, h.Streak-1)
		h.TotalCompleted = max(0, h.TotalCompleted-1)
		out[idx] = h
		return out, ToggleResult{Completed: false, Habit: h}, nil
	}

	ts := now
	h.LastCompleted = &ts
	h.Streak++
	h.TotalCompleted++
	out[idx] = h
	return out, ToggleResult{Completed: true, Habit: h}, nil
}

// RecomputeStreaks corrects streak caches that went stale while the app was
// closed: a habit last completed more than one calendar day before now loses
// its streak; a habit completed today or yesterday keeps it. Run once per
// session load.
func RecomputeStreaks(habits []models.Habit, now time.Time) []models.Habit {
	out := make([]models.Habit, len(habits))
	for i, h := range habits {
		if h.LastCompleted == nil {
			h.Streak = 0
		} else if dateutil.DaysBetween(*h.LastCompleted, now) > 1 {
			h.Streak = 0
		}
		out[i] = h
	}
	return out
}

// Add appends a new habit built from the draft with zeroed counters.
func Add(habits []models.Habit, draft Draft) ([]models.Habit, models.Habit) {
	target := draft.Target
	if target < 1 {
		target = 1
	}
	h := models.Habit{
		ID:       uuid.New().String(),
		Name:     draft.Name,
		Emoji:    draft.Emoji,
		Category: draft.Category,
		Target:   target,
	}
	out := make([]models.Habit, 0, len(habits)+1)
	out = append(out, habits...)
	out = append(out, h)
	return out, h
}

// Update replaces the user-editable fields of the matching habit. Streak and
// completion counters are untouched.
func Update(habits []models.Habit, id string, draft Draft) ([]models.Habit, error) {
	idx := indexOf(habits, id)
	if idx < 0 {
		return habits, ErrNotFound
	}
	out := make([]models.Habit, len(habits))
	copy(out, habits)

	h := out[idx]
	h.Name = draft.Name
	h.Emoji = draft.Emoji
	h.Category = draft.Category
	if draft.Target >= 1 {
		h.Target = draft.Target
	}
	out[idx] = h
	return out, nil
}

// Remove deletes the habit from the ledger. All dependent metrics are
// derived fresh on each evaluation, so no cascading cleanup is needed.
func Remove(habits []models.Habit, id string) ([]models.Habit, error) {
	idx := indexOf(habits, id)
	if idx < 0 {
		return habits, ErrNotFound
	}
	out := make([]models.Habit, 0, len(habits)-1)
	out = append(out, habits[:idx]...)
	out = append(out, habits[idx+1:]...)
	return out, nil
}

// Find returns the habit with the given id.
func Find(habits []models.Habit, id string) (models.Habit, error) {
	idx := indexOf(habits, id)
	if idx < 0 {
		return models.Habit{}, ErrNotFound
	}
	return habits[idx], nil
}

// CompletedOn reports whether the habit's last completion falls on the same
// calendar day as day.
func CompletedOn(h models.Habit, day time.Time) bool {
	return h.LastCompleted != nil && dateutil.SameDay(*h.LastCompleted, day)
}

// CompletedToday counts habits completed on the calendar day of now.
func CompletedToday(habits []models.Habit, now time.Time) int {
	n := 0
	for _, h := range habits {
		if CompletedOn(h, now) {
			n++
		}
	}
	return n
}

// TotalCompletions sums TotalCompleted across the ledger.
func TotalCompletions(habits []models.Habit) int {
	sum := 0
	for _, h := range habits {
		sum += h.TotalCompleted
	}
	return sum
}

// MaxStreak returns the highest streak in the ledger, 0 when empty.
func MaxStreak(habits []models.Habit) int {
	best := 0
	for _, h := range habits {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}

// Categories returns the number of distinct habit categories.
func Categories(habits []models.Habit) int {
	seen := make(map[string]struct{}, len(habits))
	for _, h := range habits {
		seen[h.Category] = struct{}{}
	}
	return len(seen)
}

func indexOf(habits []models.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
