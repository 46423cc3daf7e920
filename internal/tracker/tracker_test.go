package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
)

func habitAt(streak, total int, last *time.Time) models.Habit {
	return models.Habit{
		ID:             "h1",
		Name:           "Exercise",
		Emoji:          "🏃",
		Category:       "Fitness",
		Target:         1,
		Streak:         streak,
		TotalCompleted: total,
		LastCompleted:  last,
	}
}

func TestToggleCompletion_Complete(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	habits := []models.Habit{habitAt(3, 10, nil)}

	got, res, err := ToggleCompletion(habits, "h1", now)
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if !res.Completed {
		t.Errorf("expected a completion, got an uncomplete")
	}
	h := got[0]
	if h.Streak != 4 || h.TotalCompleted != 11 {
		t.Errorf("streak/total = %d/%d, want 4/11", h.Streak, h.TotalCompleted)
	}
	if h.LastCompleted == nil || !h.LastCompleted.Equal(now) {
		t.Errorf("LastCompleted = %v, want %v", h.LastCompleted, now)
	}
	// Input slice must be untouched.
	if habits[0].Streak != 3 {
		t.Errorf("input slice mutated: streak = %d", habits[0].Streak)
	}
}

func TestToggleCompletion_SameDayRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	later := now.Add(4 * time.Hour)
	habits := []models.Habit{habitAt(5, 20, nil)}

	completed, _, err := ToggleCompletion(habits, "h1", now)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	reverted, res, err := ToggleCompletion(completed, "h1", later)
	if err != nil {
		t.Fatalf("uncomplete failed: %v", err)
	}
	if res.Completed {
		t.Errorf("expected an uncomplete on second same-day toggle")
	}

	h := reverted[0]
	if h.Streak != 5 || h.TotalCompleted != 20 {
		t.Errorf("round trip streak/total = %d/%d, want 5/20", h.Streak, h.TotalCompleted)
	}
	if h.LastCompleted != nil {
		t.Errorf("LastCompleted = %v, want nil", h.LastCompleted)
	}
}

func TestToggleCompletion_UncompleteFloorsAtZero(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	last := now.Add(-time.Hour)
	habits := []models.Habit{habitAt(0, 0, &last)}

	got, _, err := ToggleCompletion(habits, "h1", now)
	if err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if got[0].Streak != 0 || got[0].TotalCompleted != 0 {
		t.Errorf("streak/total = %d/%d, want 0/0", got[0].Streak, got[0].TotalCompleted)
	}
}

func TestToggleCompletion_UnknownID(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	habits := []models.Habit{habitAt(2, 4, nil)}

	got, _, err := ToggleCompletion(habits, "nope", now)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got[0].Streak != 2 || got[0].TotalCompleted != 4 {
		t.Errorf("ledger changed on unknown id")
	}
}

func TestRecomputeStreaks(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	stale := now.AddDate(0, 0, -2)
	ancient := now.AddDate(0, 0, -40)

	tests := []struct {
		name string
		last *time.Time
		in   int
		want int
	}{
		{name: "nil last completion forces zero", last: nil, in: 9, want: 0},
		{name: "completed today keeps streak", last: &today, in: 9, want: 9},
		{name: "completed yesterday keeps streak", last: &yesterday, in: 9, want: 9},
		{name: "two days ago resets", last: &stale, in: 9, want: 0},
		{name: "long gone resets", last: &ancient, in: 120, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habits := []models.Habit{habitAt(tt.in, 50, tt.last)}
			got := RecomputeStreaks(habits, now)
			if got[0].Streak != tt.want {
				t.Errorf("streak = %d, want %d", got[0].Streak, tt.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	habits, h := Add(nil, Draft{Name: "Journal", Emoji: "📓", Category: "Wellness", Target: 0})
	if len(habits) != 1 {
		t.Fatalf("len = %d, want 1", len(habits))
	}
	if h.ID == "" {
		t.Errorf("expected a generated id")
	}
	if h.Target != 1 {
		t.Errorf("target = %d, want floor of 1", h.Target)
	}
	if h.Streak != 0 || h.TotalCompleted != 0 || h.LastCompleted != nil {
		t.Errorf("new habit must start with zeroed counters: %+v", h)
	}
}

func TestUpdate_DoesNotTouchCounters(t *testing.T) {
	last := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	habits := []models.Habit{habitAt(7, 30, &last)}

	got, err := Update(habits, "h1", Draft{Name: "Run", Emoji: "👟", Category: "Fitness", Target: 2})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	h := got[0]
	if h.Name != "Run" || h.Emoji != "👟" || h.Target != 2 {
		t.Errorf("editable fields not applied: %+v", h)
	}
	if h.Streak != 7 || h.TotalCompleted != 30 || h.LastCompleted == nil {
		t.Errorf("counters must survive an edit: %+v", h)
	}
}

func TestRemove(t *testing.T) {
	habits := []models.Habit{habitAt(1, 1, nil), {ID: "h2", Name: "Read"}}

	got, err := Remove(habits, "h1")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "h2" {
		t.Errorf("unexpected ledger after remove: %+v", got)
	}

	if _, err := Remove(got, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAggregates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	today := now.Add(-time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	habits := []models.Habit{
		{ID: "a", Category: "Health", Streak: 3, TotalCompleted: 12, LastCompleted: &today},
		{ID: "b", Category: "Health", Streak: 9, TotalCompleted: 40, LastCompleted: &yesterday},
		{ID: "c", Category: "Learning", Streak: 0, TotalCompleted: 2},
	}

	if got := CompletedToday(habits, now); got != 1 {
		t.Errorf("CompletedToday = %d, want 1", got)
	}
	if got := TotalCompletions(habits); got != 54 {
		t.Errorf("TotalCompletions = %d, want 54", got)
	}
	if got := MaxStreak(habits); got != 9 {
		t.Errorf("MaxStreak = %d, want 9", got)
	}
	if got := Categories(habits); got != 2 {
		t.Errorf("Categories = %d, want 2", got)
	}
	if got := MaxStreak(nil); got != 0 {
		t.Errorf("MaxStreak(nil) = %d, want 0", got)
	}
}
