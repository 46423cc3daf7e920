package cli

import (
	"errors"
	"fmt"

	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/progression"
	"github.com/habitheroapp/habithero/internal/tracker"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits." default:"1"`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion for a habit."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Emoji    string `help:"Display emoji." default:"✅"`
	Category string `help:"Habit category." default:"General"`
	Target   int    `help:"Daily target count." default:"1"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Service.AddHabit(tracker.Draft{
		Name:     c.Name,
		Emoji:    c.Emoji,
		Category: c.Category,
		Target:   c.Target,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	data := ctx.Service.Data()
	if len(data.Habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habithero habit add'.")
		return nil
	}

	now := ctx.Service.Now()
	for _, h := range data.Habits {
		mark := "○"
		if h.LastCompleted != nil && dateutil.SameDay(*h.LastCompleted, now) {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s %s", mark, h.Emoji, h.Name)
		detail := fmt.Sprintf("streak %d · total %d · %s · id %s", h.Streak, h.TotalCompleted, h.Category, h.ID)
		fmt.Printf("%s\n  %s\n", line, subtleStyle.Render(detail))
	}
	return nil
}

type HabitEditCmd struct {
	ID       string `arg:"" help:"Habit id."`
	Name     string `help:"New name."`
	Emoji    string `help:"New emoji."`
	Category string `help:"New category."`
	Target   int    `help:"New daily target."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	cur, err := tracker.Find(ctx.Service.Data().Habits, c.ID)
	if errors.Is(err, tracker.ErrNotFound) {
		return fmt.Errorf("habit %q not found", c.ID)
	}

	draft := tracker.Draft{
		Name:     cur.Name,
		Emoji:    cur.Emoji,
		Category: cur.Category,
		Target:   cur.Target,
	}
	if c.Name != "" {
		draft.Name = c.Name
	}
	if c.Emoji != "" {
		draft.Emoji = c.Emoji
	}
	if c.Category != "" {
		draft.Category = c.Category
	}
	if c.Target > 0 {
		draft.Target = c.Target
	}

	if err := ctx.Service.UpdateHabit(c.ID, draft); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", draft.Name)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	err := ctx.Service.RemoveHabit(c.ID)
	if errors.Is(err, tracker.ErrNotFound) {
		return fmt.Errorf("habit %q not found", c.ID)
	}
	if err != nil {
		return err
	}
	fmt.Println("Habit deleted.")
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	out, err := ctx.Service.ToggleHabit(c.ID)
	if errors.Is(err, tracker.ErrNotFound) {
		return fmt.Errorf("habit %q not found", c.ID)
	}
	if err != nil {
		return err
	}

	if out.Result.Completed {
		fmt.Printf("Completed %s %s (streak %d, +%d XP)\n",
			out.Result.Habit.Emoji, out.Result.Habit.Name, out.Result.Habit.Streak, progression.XPPerCompletion)
	} else {
		fmt.Printf("Uncompleted %s %s\n", out.Result.Habit.Emoji, out.Result.Habit.Name)
	}
	if out.LeveledUp {
		fmt.Println(unlockedStyle.Render(fmt.Sprintf("Level up! You are now level %d", out.Stats.Level)))
	}
	for _, st := range out.NewAchievements {
		fmt.Println(unlockedStyle.Render(fmt.Sprintf("Achievement unlocked: %s %s (%s)", st.Icon, st.Title, st.Description)))
	}
	if ctx.Service.InMemoryOnly() {
		fmt.Println(warnStyle.Render("Warning: storage unavailable, changes kept in memory only"))
	}
	return nil
}
