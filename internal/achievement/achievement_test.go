package achievement

import (
	"testing"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func stateByID(t *testing.T, states []State, id string) State {
	t.Helper()
	for _, s := range states {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("achievement %q not in states", id)
	return State{}
}

func TestEvaluate_EmptyLedgerIsAllZeroes(t *testing.T) {
	stats := models.UserStats{Level: 1}
	states := Evaluate(nil, stats, testNow)

	if len(states) != len(Catalog) {
		t.Fatalf("got %d states, want %d", len(states), len(Catalog))
	}
	for _, s := range states {
		if s.Category == CategoryLevel {
			continue // level progress is 1 even with no habits
		}
		if s.Progress != 0 {
			t.Errorf("%s: progress = %d, want 0 on empty ledger", s.ID, s.Progress)
		}
		if s.Unlocked {
			t.Errorf("%s: unlocked on empty ledger", s.ID)
		}
	}
}

func TestEvaluate_ProgressPerCategory(t *testing.T) {
	today := testNow.Add(-time.Hour)
	habits := []models.Habit{
		{ID: "a", Category: "Health", Streak: 14, TotalCompleted: 80, LastCompleted: &today},
		{ID: "b", Category: "Fitness", Streak: 3, TotalCompleted: 25, LastCompleted: &today},
		{ID: "c", Category: "Learning", Streak: 0, TotalCompleted: 0},
	}
	stats := models.UserStats{Level: 10, TotalXP: 9500}

	states := Evaluate(habits, stats, testNow)

	tests := []struct {
		id           string
		wantProgress int
		wantUnlocked bool
	}{
		{id: "first-streak", wantProgress: 14, wantUnlocked: true},
		{id: "week-warrior", wantProgress: 14, wantUnlocked: true},
		{id: "fortnight-hero", wantProgress: 14, wantUnlocked: true},
		{id: "month-master", wantProgress: 14, wantUnlocked: false},
		{id: "level-up", wantProgress: 10, wantUnlocked: true},
		{id: "experienced", wantProgress: 10, wantUnlocked: true},
		{id: "expert", wantProgress: 10, wantUnlocked: false},
		{id: "first-hundred", wantProgress: 105, wantUnlocked: true},
		{id: "five-hundred", wantProgress: 105, wantUnlocked: false},
		{id: "diversified", wantProgress: 3, wantUnlocked: false},
		{id: "habit-collector", wantProgress: 3, wantUnlocked: false},
		{id: "perfect-week", wantProgress: 0, wantUnlocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := stateByID(t, states, tt.id)
			if s.Progress != tt.wantProgress {
				t.Errorf("progress = %d, want %d", s.Progress, tt.wantProgress)
			}
			if s.Unlocked != tt.wantUnlocked {
				t.Errorf("unlocked = %v, want %v", s.Unlocked, tt.wantUnlocked)
			}
		})
	}
}

func TestEvaluate_UnlockAtExactRequirement(t *testing.T) {
	today := testNow
	habits := []models.Habit{{ID: "a", Streak: 7, LastCompleted: &today}}
	states := Evaluate(habits, models.UserStats{Level: 1}, testNow)

	if s := stateByID(t, states, "week-warrior"); !s.Unlocked {
		t.Errorf("progress equal to requirement must unlock")
	}
}

func TestConsistencyStreak(t *testing.T) {
	today := testNow
	yesterday := testNow.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		habits []models.Habit
		want   int
	}{
		{
			name:   "empty ledger",
			habits: nil,
			want:   0,
		},
		{
			name: "two habits perfect for three days",
			habits: []models.Habit{
				{ID: "a", Streak: 3, LastCompleted: &today},
				{ID: "b", Streak: 3, LastCompleted: &today},
			},
			want: 3,
		},
		{
			name: "one habit broke yesterday",
			habits: []models.Habit{
				{ID: "a", Streak: 3, LastCompleted: &today},
				{ID: "b", Streak: 1, LastCompleted: &today},
			},
			want: 1,
		},
		{
			name: "one habit not completed today breaks immediately",
			habits: []models.Habit{
				{ID: "a", Streak: 5, LastCompleted: &today},
				{ID: "b", Streak: 4, LastCompleted: &yesterday},
			},
			want: 0,
		},
		{
			name: "single habit mirrors its own streak",
			habits: []models.Habit{
				{ID: "a", Streak: 10, LastCompleted: &today},
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConsistencyStreak(tt.habits, testNow); got != tt.want {
				t.Errorf("ConsistencyStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDiff_ReportsOnlyFreshUnlocks(t *testing.T) {
	today := testNow
	stats := models.UserStats{Level: 1}

	before := Evaluate(nil, stats, testNow)
	habits := []models.Habit{{ID: "a", Streak: 1, TotalCompleted: 1, LastCompleted: &today}}
	after := Evaluate(habits, stats, testNow)

	fresh := Diff(before, after)
	if len(fresh) != 1 || fresh[0].ID != "first-streak" {
		t.Fatalf("fresh = %+v, want exactly first-streak", fresh)
	}

	// Re-running against the same snapshot must not re-report.
	again := Evaluate(habits, stats, testNow)
	if fresh := Diff(after, again); len(fresh) != 0 {
		t.Errorf("re-evaluation re-reported unlocks: %+v", fresh)
	}
}

func TestDiff_UnlockNeverReportedAfterRegression(t *testing.T) {
	today := testNow
	stats := models.UserStats{Level: 1}
	habits := []models.Habit{{ID: "a", Streak: 7, TotalCompleted: 7, LastCompleted: &today}}

	unlocked := Evaluate(habits, stats, testNow)

	// Habit deleted: progress regresses, but a later matching unlock is not
	// reported again because the prior snapshot already had it.
	regressed := Evaluate(nil, stats, testNow)
	if fresh := Diff(unlocked, regressed); len(fresh) != 0 {
		t.Errorf("regression produced unlock reports: %+v", fresh)
	}
	reunlocked := Evaluate(habits, stats, testNow)
	if fresh := Diff(unlocked, reunlocked); len(fresh) != 0 {
		t.Errorf("re-unlock against old snapshot re-reported: %+v", fresh)
	}
}

func TestCatalogShape(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Catalog {
		if seen[def.ID] {
			t.Errorf("duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Requirement < 1 {
			t.Errorf("%s: requirement = %d, want >= 1", def.ID, def.Requirement)
		}
		if def.Badge == "" || def.Icon == "" {
			t.Errorf("%s: missing badge or icon", def.ID)
		}
	}
	if len(Catalog) != 16 {
		t.Errorf("catalog has %d entries, want 16", len(Catalog))
	}
}
