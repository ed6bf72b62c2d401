package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carlamendes/bloom/internal/challenge"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWorkouts:
		content = m.viewWorkouts()
	case StateChallenge:
		content = m.viewChallenge()
	case StateAchievements:
		content = m.viewAchievements()
	}

	sections := []string{m.viewTabs(), content}
	if m.status != "" {
		sections = append(sections, docStyle.Render(celebrateStyle.Render(m.status)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Workouts", "Challenge", "Achievements"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	if !m.hasUser {
		return docStyle.Render("No profile yet. Run 'bloom init' first.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("Hi %s 🌸", m.user.Name)))
	fmt.Fprintf(&b, "Level %d  ·  %d XP  ·  🔥 %d day streak\n", m.user.Level, m.user.XP, m.user.Streak)
	b.WriteString(m.xpBar.ViewAs(m.levelProgress()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "💧 Water     %d / %d ml\n", m.stats.WaterML, constants.WaterGoalML)
	mood := m.stats.Mood
	if mood == "" {
		mood = dimStyle.Render("not logged")
	}
	fmt.Fprintf(&b, "💭 Mood      %s\n", mood)
	fmt.Fprintf(&b, "🏃 Workouts  %d / %d\n", stats.CompletedCount(m.workouts), len(m.workouts))
	fmt.Fprintf(&b, "🍽  Meals     %d\n", m.stats.MealsLogged)
	fmt.Fprintf(&b, "🌿 Challenge %d / %d days\n", challenge.CompletedCount(m.challenge), constants.ChallengeDays)

	return docStyle.Render(b.String())
}

func (m Model) viewWorkouts() string {
	var b strings.Builder
	for i, w := range m.workouts {
		mark := "[ ]"
		if w.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s, %d min)", mark, w.Title, w.Category, w.DurationMin)
		if i == m.workoutCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewChallenge() string {
	var b strings.Builder
	for i, d := range m.challenge {
		mark := "[ ]"
		if d.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s Day %2d  %s", mark, d.Day, d.Title)
		if i == m.challengeCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewAchievements() string {
	var b strings.Builder
	for _, a := range m.achievements {
		if a.Unlocked() {
			fmt.Fprintf(&b, "%s %s — %s\n", a.Icon, a.Title, a.Description)
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("🔒 %s — %s", a.Title, a.Description)) + "\n")
		}
	}
	return docStyle.Render(b.String())
}
