package progression

import (
	"testing"
	"time"

	"github.com/habitheroapp/habithero/internal/models"
)

func freshStats() models.UserStats {
	return models.UserStats{
		Level:    1,
		XP:       0,
		XPToNext: XPPerLevel,
		Badges:   []string{},
		JoinDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func checkInvariants(t *testing.T, s models.UserStats) {
	t.Helper()
	if want := s.TotalXP/XPPerLevel + 1; s.Level != want {
		t.Errorf("level = %d, want %d for totalXP %d", s.Level, want, s.TotalXP)
	}
	if want := s.TotalXP % XPPerLevel; s.XP != want {
		t.Errorf("xp = %d, want %d for totalXP %d", s.XP, want, s.TotalXP)
	}
	if s.XP+s.XPToNext != XPPerLevel {
		t.Errorf("xp + xpToNext = %d, want %d", s.XP+s.XPToNext, XPPerLevel)
	}
}

func TestAwardXP_InvariantHoldsAcrossSequence(t *testing.T) {
	stats := freshStats()
	amounts := []int{25, 25, 975, 0, 25, 1000, 3000, 25, 25}
	for _, amt := range amounts {
		stats, _ = AwardXP(stats, amt)
		checkInvariants(t, stats)
	}
	wantTotal := 25 + 25 + 975 + 0 + 25 + 1000 + 3000 + 25 + 25
	if stats.TotalXP != wantTotal {
		t.Errorf("totalXP = %d, want %d", stats.TotalXP, wantTotal)
	}
}

func TestAwardXP_LevelUpFlag(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		amount  int
		want    bool
	}{
		{name: "small award within level", totalXP: 0, amount: 25, want: false},
		{name: "crossing the boundary levels up", totalXP: 975, amount: 25, want: true},
		{name: "landing exactly on the boundary levels up", totalXP: 990, amount: 10, want: true},
		{name: "zero award never levels", totalXP: 999, amount: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := freshStats()
			stats, _ = AwardXP(stats, tt.totalXP)
			_, leveledUp := AwardXP(stats, tt.amount)
			if leveledUp != tt.want {
				t.Errorf("leveledUp = %v, want %v", leveledUp, tt.want)
			}
		})
	}
}

func TestAwardXP_MilestoneBadges(t *testing.T) {
	stats := freshStats()

	// Jump straight to level 12: both the level-5 and level-10 badges land.
	stats, leveledUp := AwardXP(stats, 11*XPPerLevel)
	if !leveledUp {
		t.Fatalf("expected a level up")
	}
	if !stats.HasBadge("🌟") || !stats.HasBadge("💎") {
		t.Errorf("badges = %v, want 🌟 and 💎", stats.Badges)
	}
	if stats.HasBadge("🏆") {
		t.Errorf("level-20 badge granted too early: %v", stats.Badges)
	}

	// A later level-up must not duplicate already granted badges.
	stats, _ = AwardXP(stats, XPPerLevel)
	count := 0
	for _, b := range stats.Badges {
		if b == "🌟" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("🌟 granted %d times, want exactly once", count)
	}
}

func TestGrantBadge_Idempotent(t *testing.T) {
	stats := freshStats()
	stats = GrantBadge(stats, "🔥")
	stats = GrantBadge(stats, "🔥")
	if len(stats.Badges) != 1 {
		t.Errorf("badges = %v, want a single 🔥", stats.Badges)
	}
}

func TestAwardXP_NegativeAmountIgnored(t *testing.T) {
	stats := freshStats()
	stats, _ = AwardXP(stats, 500)
	got, leveledUp := AwardXP(stats, -100)
	if leveledUp {
		t.Errorf("negative award must not level up")
	}
	if got.TotalXP != 500 {
		t.Errorf("totalXP = %d, want 500", got.TotalXP)
	}
	checkInvariants(t, got)
}
