package cli

import (
	"fmt"

	"github.com/habitheroapp/habithero/internal/analytics"
	"github.com/habitheroapp/habithero/internal/models"
)

type AnalyticsCmd struct {
	Days int `help:"Window size in days." default:"7"`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}

	data := ctx.Service.Data()
	series := ctx.Service.Series(c.Days)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Last %d days", c.Days)))
	for _, p := range series {
		mood := " "
		if p.Mood != nil {
			mood = moodEmoji(*p.Mood)
		}
		fmt.Printf("%s %s %d/%d %s\n",
			p.Date.Format("Mon 02 Jan"), progressBar(p.Completed, p.Total, 10), p.Completed, p.Total, mood)
	}

	rate := analytics.CompletionRate(series, len(data.Habits))
	fmt.Printf("\nCompletion rate: %d%%\n", rate)

	summary := analytics.StreakStats(data.Habits)
	fmt.Printf("Streaks: total %d · average %d · longest %d · active %d\n",
		summary.Total, summary.Average, summary.Longest, summary.Active)

	breakdown := analytics.CategoryBreakdown(data.Habits, ctx.Service.Now())
	if len(breakdown) > 0 {
		fmt.Println(titleStyle.Render("\nCategories today"))
		for _, cat := range breakdown {
			fmt.Printf("%-12s %s %d/%d (%d%%)\n",
				cat.Category, progressBar(cat.Completed, cat.Total, 10), cat.Completed, cat.Total, cat.Percentage)
		}
	}
	return nil
}

func moodEmoji(kind models.MoodKind) string {
	switch kind {
	case models.MoodHappy:
		return "😊"
	case models.MoodNeutral:
		return "😐"
	case models.MoodSad:
		return "😔"
	}
	return " "
}
