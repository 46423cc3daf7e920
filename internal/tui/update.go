package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitheroapp/habithero/internal/models"
	"github.com/habitheroapp/habithero/internal/tracker"
)

var errEmptyName = errors.New("name must not be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		m.xp.Width = msg.Width - frameW - 4
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateMood, StateConfirmDelete:
		return m.updateForm(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Let list filtering swallow keys while active.
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(keyMsg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit

			case key.Matches(keyMsg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil

			case key.Matches(keyMsg, m.keys.Toggle):
				return m.toggleSelected()

			case key.Matches(keyMsg, m.keys.Add):
				m.habitForm = &habitFormModel{Emoji: "✅", Category: "General"}
				m.form = newHabitForm(m.habitForm)
				m.state = StateAddHabit
				return m, m.form.Init()

			case key.Matches(keyMsg, m.keys.Mood):
				m.moodForm = &moodFormModel{Mood: string(models.MoodNeutral)}
				m.form = newMoodForm(m.moodForm)
				m.state = StateMood
				return m, m.form.Init()

			case key.Matches(keyMsg, m.keys.Delete):
				item, ok := m.list.SelectedItem().(Item)
				if !ok {
					return m, nil
				}
				m.deleteID = item.Habit.ID
				m.deleteName = item.Habit.Name
				m.confirm = false
				m.form = newConfirmForm(m.deleteName, &m.confirm)
				m.state = StateConfirmDelete
				return m, m.form.Init()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return m, nil
	}

	out, err := m.svc.ToggleHabit(item.Habit.ID)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			m.setStatus("habit no longer exists", true)
			m.refresh()
			return m, nil
		}
		m.setStatus(err.Error(), true)
		return m, nil
	}

	switch {
	case len(out.NewAchievements) > 0:
		st := out.NewAchievements[0]
		m.setStatus(fmt.Sprintf("Achievement unlocked: %s %s!", st.Icon, st.Title), false)
	case out.LeveledUp:
		m.setStatus(fmt.Sprintf("Level up! Now level %d", out.Stats.Level), false)
	case out.Result.Completed:
		m.setStatus(fmt.Sprintf("Completed %s (streak %d)", out.Result.Habit.Name, out.Result.Habit.Streak), false)
	default:
		m.setStatus(fmt.Sprintf("Uncompleted %s", out.Result.Habit.Name), false)
	}

	m.refresh()
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case StateAddHabit:
		if _, err := m.svc.AddHabit(tracker.Draft{
			Name:     m.habitForm.Name,
			Emoji:    m.habitForm.Emoji,
			Category: m.habitForm.Category,
			Target:   1,
		}); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Added %s", m.habitForm.Name), false)
		}

	case StateMood:
		if err := m.svc.SetMood(models.MoodKind(m.moodForm.Mood), m.moodForm.Note); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus("Mood recorded", false)
		}

	case StateConfirmDelete:
		if m.confirm {
			if err := m.svc.RemoveHabit(m.deleteID); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus(fmt.Sprintf("Deleted %s", m.deleteName), false)
			}
		}
	}

	m.state = StateList
	m.form = nil
	m.refresh()
	return m, nil
}

func (m *Model) refresh() {
	m.list.SetItems(habitItems(m.svc))
}

func (m *Model) setStatus(msg string, warn bool) {
	m.status = msg
	m.statusWarn = warn
}
