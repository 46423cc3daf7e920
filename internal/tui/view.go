package tui

import (
	"fmt"
	"strings"

	"github.com/habitheroapp/habithero/internal/progression"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddHabit, StateMood, StateConfirmDelete:
		return docStyle.Render(m.form.View())
	}

	stats := m.svc.Data().UserStats

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Habit Hero · Level %d", stats.Level)))
	b.WriteString("\n")
	b.WriteString(m.xp.ViewAs(float64(stats.XP) / float64(progression.XPPerLevel)))
	b.WriteString(xpLabelStyle.Render(fmt.Sprintf("%d/%d XP", stats.XP, progression.XPPerLevel)))
	if len(stats.Badges) > 0 {
		b.WriteString(xpLabelStyle.Render(strings.Join(stats.Badges, " ")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.status != "" {
		if m.statusWarn {
			b.WriteString(warnStatusStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
