// Package progression converts completion events into experience points,
// levels and level-milestone badges.
package progression

import "github.com/habitheroapp/habithero/internal/models"

const (
	// XPPerCompletion is awarded for each habit completion.
	XPPerCompletion = 25
	// XPPerLevel is the fixed XP span of a level.
	XPPerLevel = 1000
)

// milestone pairs a level with the badge granted on reaching it.
type milestone struct {
	level int
	badge string
}

var levelMilestones = []milestone{
	{level: 5, badge: "🌟"},
	{level: 10, badge: "💎"},
	{level: 20, badge: "🏆"},
}

// AwardXP adds amount to the user's total XP and recomputes the derived
// level fields. On level-up, any newly reached milestone badge is appended
// exactly once (membership-tested, so a reloaded document never re-grants).
func AwardXP(stats models.UserStats, amount int) (models.UserStats, bool) {
	if amount < 0 {
		amount = 0
	}
	out := stats
	out.TotalXP = stats.TotalXP + amount
	out.Level = LevelForXP(out.TotalXP)
	out.XP = out.TotalXP % XPPerLevel
	out.XPToNext = XPPerLevel - out.XP

	leveledUp := out.Level > stats.Level
	if leveledUp {
		for _, m := range levelMilestones {
			if out.Level >= m.level {
				out = GrantBadge(out, m.badge)
			}
		}
	}
	return out, leveledUp
}

// GrantBadge appends badge to the user's badge list if not already present.
func GrantBadge(stats models.UserStats, badge string) models.UserStats {
	if stats.HasBadge(badge) {
		return stats
	}
	out := stats
	out.Badges = make([]string, 0, len(stats.Badges)+1)
	out.Badges = append(out.Badges, stats.Badges...)
	out.Badges = append(out.Badges, badge)
	return out
}

// LevelForXP maps a total XP amount to a level.
func LevelForXP(totalXP int) int {
	return totalXP/XPPerLevel + 1
}
