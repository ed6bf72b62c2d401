package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carlamendes/bloom/internal/app"
	"github.com/carlamendes/bloom/internal/challenge"
	"github.com/carlamendes/bloom/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		case key.Matches(msg, m.keys.Water):
			res, stats, err := m.app.AddWater(constants.DefaultWaterSipML, time.Now())
			m.applyResult(res, fmt.Sprintf("Water +%dml (%dml today)", constants.DefaultWaterSipML, stats.WaterML), err)
		case key.Matches(msg, m.keys.Mood):
			emoji, label := m.nextMood()
			res, err := m.app.LogMood(emoji, label, "", time.Now())
			m.applyResult(res, fmt.Sprintf("Feeling %s %s", label, emoji), err)
		case key.Matches(msg, m.keys.Breathe):
			res, err := m.app.QuietMinute(time.Now())
			m.applyResult(res, "One quiet minute, well spent", err)
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.state {
	case StateWorkouts:
		m.workoutCursor = clamp(m.workoutCursor+delta, 0, len(m.workouts)-1)
	case StateChallenge:
		m.challengeCursor = clamp(m.challengeCursor+delta, 0, len(m.challenge)-1)
	}
}

func (m *Model) toggleSelected() {
	switch m.state {
	case StateWorkouts:
		if len(m.workouts) == 0 {
			return
		}
		w := m.workouts[m.workoutCursor]
		res, _, err := m.app.ToggleWorkout(w.ID, time.Now())
		m.applyResult(res, w.Title, err)
	case StateChallenge:
		if len(m.challenge) == 0 {
			return
		}
		day := m.challenge[m.challengeCursor].Day
		res, _, err := m.app.ToggleChallenge(day, time.Now())
		m.applyResult(res, fmt.Sprintf("Day %d", day), err)
		if err == nil && res.Awarded {
			m.status += "  " + challenge.Motivation()
		}
	}
}

// applyResult refreshes the model and sets the status line from an action's
// outcome.
func (m *Model) applyResult(res app.Result, label string, err error) {
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}

	m.refresh()

	m.status = label
	if res.Awarded {
		m.status = fmt.Sprintf("%s  +%d XP", label, res.Award.Amount)
		if res.Award.LeveledUp {
			m.status += fmt.Sprintf("  🎉 Level %d!", res.Award.User.Level)
		}
	}
	if res.Unlocked != nil {
		m.status += fmt.Sprintf("  %s %s unlocked!", res.Unlocked.Icon, res.Unlocked.Title)
	}
}

// moodCycle is the quick-pick order for the mood keybinding.
var moodCycle = []struct{ emoji, label string }{
	{"😄", "happy"},
	{"😴", "tired"},
	{"😨", "anxious"},
	{"😫", "drained"},
	{"😌", "calm"},
}

// nextMood returns the mood after today's current one, wrapping around.
func (m Model) nextMood() (string, string) {
	for i, c := range moodCycle {
		if c.label == m.stats.Mood {
			next := moodCycle[(i+1)%len(moodCycle)]
			return next.emoji, next.label
		}
	}
	return moodCycle[0].emoji, moodCycle[0].label
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
