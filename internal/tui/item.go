package tui

import (
	"fmt"

	"github.com/habitheroapp/habithero/internal/models"
)

// Item adapts a habit for the bubbles list.
type Item struct {
	Habit models.Habit
	Done  bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s %s", mark, i.Habit.Emoji, i.Habit.Name)
}

func (i Item) Description() string {
	if i.Habit.Streak > 0 {
		return fmt.Sprintf("streak %d · %d total · %s", i.Habit.Streak, i.Habit.TotalCompleted, i.Habit.Category)
	}
	return fmt.Sprintf("%d total · %s", i.Habit.TotalCompleted, i.Habit.Category)
}

func (i Item) FilterValue() string { return i.Habit.Name }
