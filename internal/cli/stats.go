package cli

import (
	"fmt"
	"strings"

	"github.com/habitheroapp/habithero/internal/achievement"
	"github.com/habitheroapp/habithero/internal/analytics"
	"github.com/habitheroapp/habithero/internal/progression"
	"github.com/habitheroapp/habithero/internal/tracker"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	data := ctx.Service.Data()
	stats := data.UserStats
	now := ctx.Service.Now()

	fmt.Println(titleStyle.Render(fmt.Sprintf("Level %d", stats.Level)))
	fmt.Printf("%s %d/%d XP (%d total)\n",
		progressBar(stats.XP, progression.XPPerLevel, 20), stats.XP, progression.XPPerLevel, stats.TotalXP)

	if len(stats.Badges) > 0 {
		fmt.Printf("Badges: %s\n", strings.Join(stats.Badges, " "))
	}

	summary := analytics.StreakStats(data.Habits)
	fmt.Printf("\nHabits: %d (%d done today)\n", len(data.Habits), tracker.CompletedToday(data.Habits, now))
	fmt.Printf("Streaks: longest %d · average %d · active %d\n", summary.Longest, summary.Average, summary.Active)

	if mood, ok := ctx.Service.TodayMood(); ok {
		fmt.Printf("Mood today: %s\n", mood.Mood)
	}

	states := ctx.Service.Achievements()
	fmt.Printf("Achievements: %d/%d unlocked\n", achievement.UnlockedCount(states), len(states))
	return nil
}

type AchievementsCmd struct {
	All bool `help:"Include locked achievements." default:"true" negatable:""`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	states := ctx.Service.Achievements()

	var category achievement.Category
	for _, st := range states {
		if !st.Unlocked && !c.All {
			continue
		}
		if st.Category != category {
			category = st.Category
			fmt.Println(titleStyle.Render(strings.ToUpper(string(category))))
		}

		progress := st.Progress
		if progress > st.Requirement {
			progress = st.Requirement
		}
		line := fmt.Sprintf("%s %s (%s) %s %d/%d",
			st.Icon, st.Title, st.Rarity, progressBar(progress, st.Requirement, 10), progress, st.Requirement)
		if st.Unlocked {
			fmt.Println(unlockedStyle.Render(line))
		} else {
			fmt.Println(subtleStyle.Render(line))
		}
	}
	return nil
}
