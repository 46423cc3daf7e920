// Package tui renders the interactive dashboard: habit list with toggles,
// XP progress, mood entry and achievement unlock notices.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitheroapp/habithero/internal/app"
	"github.com/habitheroapp/habithero/internal/dateutil"
	"github.com/habitheroapp/habithero/internal/models"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateMood
	StateConfirmDelete
)

type habitFormModel struct {
	Name     string
	Emoji    string
	Category string
}

type moodFormModel struct {
	Mood string
	Note string
}

type Model struct {
	svc   *app.Service
	state SessionState
	keys  KeyMap
	help  help.Model

	list list.Model
	xp   progress.Model

	form      *huh.Form
	habitForm *habitFormModel
	moodForm  *moodFormModel

	deleteID   string
	deleteName string
	confirm    bool

	status     string
	statusWarn bool
	width      int
	height     int
	quitting   bool
}

func NewModel(svc *app.Service) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(habitItems(svc), delegate, 0, 0)
	l.Title = "Habits"
	l.SetShowHelp(false)

	bar := progress.New(progress.WithDefaultGradient())

	return Model{
		svc:   svc,
		state: StateList,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		list:  l,
		xp:    bar,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func habitItems(svc *app.Service) []list.Item {
	data := svc.Data()
	now := svc.Now()
	items := make([]list.Item, 0, len(data.Habits))
	for _, h := range data.Habits {
		done := h.LastCompleted != nil && dateutil.SameDay(*h.LastCompleted, now)
		items = append(items, Item{Habit: h, Done: done})
	}
	return items
}

func newHabitForm(fm *habitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji").
				Value(&fm.Emoji),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func newMoodForm(fm *moodFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling today?").
				Options(
					huh.NewOption("😊 Happy", string(models.MoodHappy)),
					huh.NewOption("😐 Neutral", string(models.MoodNeutral)),
					huh.NewOption("😔 Sad", string(models.MoodSad)),
				).
				Value(&fm.Mood),
			huh.NewInput().
				Title("Note (optional)").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

func newConfirmForm(name string, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete habit \"" + name + "\"?").
				Description("Its streak history is discarded.").
				Value(confirm),
		),
	).WithTheme(huh.ThemeDracula())
}
